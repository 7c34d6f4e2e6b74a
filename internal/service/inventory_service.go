package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/engine"
	"github.com/FynnK/FestivalInventory/internal/export"
	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"
	"github.com/FynnK/FestivalInventory/internal/notify"
	"github.com/FynnK/FestivalInventory/internal/snapshot"
	"github.com/FynnK/FestivalInventory/internal/store"

	"github.com/rs/zerolog/log"
)

// InventoryService is the single entry point for every inventory
// operation: item and stage management, scan routing, receipt
// lifecycle, snapshots and exports.
type InventoryService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	AddStock(ctx context.Context, id string, quantity int) (*dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*dto.ItemResponse, error)
	ListItems(ctx context.Context) (*dto.ItemListResponse, error)

	AddStage(ctx context.Context, name string) error
	RemoveStage(ctx context.Context, name string) error
	ListStages(ctx context.Context) (*dto.StagesResponse, error)

	Scan(ctx context.Context, code string, importMode bool) (*dto.ScanResponse, error)

	Receipt(ctx context.Context) (*dto.ReceiptResponse, error)
	AdjustReceiptLine(ctx context.Context, itemID string, delta int) (*model.ReceiptLine, error)
	RemoveReceiptLine(ctx context.Context, itemID string) error
	CancelReceipt(ctx context.Context) error
	CommitReceipt(ctx context.Context, stage string) (*engine.CommitResult, error)

	Snapshot(ctx context.Context) ([]byte, error)
	LoadSnapshot(ctx context.Context, data []byte) error

	Report(ctx context.Context) [][]string
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportPDF(ctx context.Context) (string, error)

	Restore(ctx context.Context) error
}

type inventoryService struct {
	// mu serializes every operation so each external event runs to
	// completion before the next one is processed.
	mu sync.Mutex

	ledger  *ledger.Ledger
	stages  *ledger.StageRegistry
	txn     *engine.TransactionEngine
	importE *engine.ImportEngine

	store   store.SnapshotStore
	sink    notify.Sink
	pdfPath string
}

func NewInventoryService(st store.SnapshotStore, sink notify.Sink, pdfPath string) InventoryService {
	l := ledger.New()
	stages := ledger.NewStageRegistry()
	return &inventoryService{
		ledger:  l,
		stages:  stages,
		txn:     engine.NewTransactionEngine(l, stages),
		importE: engine.NewImportEngine(l),
		store:   st,
		sink:    sink,
		pdfPath: pdfPath,
	}
}

// persist writes the current snapshot through the store. Write-through
// fires after every successful mutation; a failure is reported but
// never rolls back the in-memory state, which stays authoritative
// until the next successful write.
func (s *inventoryService) persist(ctx context.Context) {
	data, err := snapshot.Serialize(s.ledger, s.stages)
	if err == nil {
		err = s.store.Save(ctx, data)
	}
	if err != nil {
		log.Error().Err(err).Msg("snapshot write failed, in-memory state retained")
		s.sink.Error("Failed to save inventory. Changes are kept in memory.")
	}
}

// Restore loads the last snapshot from the store, if any. A missing
// snapshot leaves the empty state in place.
func (s *inventoryService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrNoSnapshot) {
		log.Info().Msg("no snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return err
	}
	doc, err := snapshot.Deserialize(data)
	if err != nil {
		return err
	}
	snapshot.Restore(doc, s.ledger, s.stages)
	log.Info().Int("items", s.ledger.Len()).Int("stages", len(s.stages.List())).Msg("snapshot restored")
	return nil
}

// ── Items ───────────────────────────────────────────────────────────────────

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unitQty := req.UnitQuantity
	if unitQty == 0 {
		unitQty = 1
	}
	item, err := s.ledger.CreateItem(req.ID, req.Name, req.Quantity, unitQty, req.UnitType, req.Description)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.sink.Success(fmt.Sprintf("New item added: %s", item.Name))
	return dto.ItemToResponse(item), nil
}

func (s *inventoryService) AddStock(ctx context.Context, id string, quantity int) (*dto.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.ledger.AddStock(id, quantity)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.sink.Success(fmt.Sprintf("Added %d units to %s", quantity, item.Name))
	return dto.ItemToResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.ledger.Get(id)
	if !ok {
		return fmt.Errorf("%w: item %s", ledger.ErrNotFound, id)
	}
	if err := s.ledger.DeleteItem(id); err != nil {
		return err
	}
	// A deleted item can leave a dangling receipt line; drop it.
	_ = s.txn.RemoveLine(id)
	s.persist(ctx)
	s.sink.Success(fmt.Sprintf("Deleted %s", item.Name))
	return nil
}

func (s *inventoryService) GetItem(_ context.Context, id string) (*dto.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.ledger.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: item %s", ledger.ErrNotFound, id)
	}
	return dto.ItemToResponse(item), nil
}

func (s *inventoryService) ListItems(_ context.Context) (*dto.ItemListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.ledger.List()
	data := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, *dto.ItemToResponse(item))
	}
	return &dto.ItemListResponse{Data: data, Total: len(data)}, nil
}

// ── Stages ──────────────────────────────────────────────────────────────────

func (s *inventoryService) AddStage(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stages.Add(name); err != nil {
		return err
	}
	s.persist(ctx)
	s.sink.Success(fmt.Sprintf("Stage %q added.", name))
	return nil
}

func (s *inventoryService) RemoveStage(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stages.Remove(name, s.ledger); err != nil {
		return err
	}
	s.persist(ctx)
	s.sink.Info(fmt.Sprintf("Stage %q deleted. All items returned to stock.", name))
	return nil
}

func (s *inventoryService) ListStages(_ context.Context) (*dto.StagesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &dto.StagesResponse{
		Stages:           s.stages.List(),
		DefaultSelection: s.stages.DefaultSelection(),
	}, nil
}

// ── Scan routing ────────────────────────────────────────────────────────────

// Scan routes one decoded code by the externally controlled mode flag:
// import mode restocks, transaction mode builds the receipt. Unknown
// codes return *ledger.UnknownItemError unchanged so callers can open
// the item-creation flow.
func (s *inventoryService) Scan(ctx context.Context, code string, importMode bool) (*dto.ScanResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if importMode {
		item, err := s.importE.Scan(code)
		if err != nil {
			return nil, err
		}
		s.persist(ctx)
		s.sink.Success(fmt.Sprintf("Added 1 unit to %s. Total: %d", item.Name, item.Total))
		return &dto.ScanResponse{Mode: "import", Item: dto.ItemToResponse(item)}, nil
	}

	line, err := s.txn.Scan(code)
	if err != nil {
		return nil, err
	}
	s.sink.Info(fmt.Sprintf("Added %s to transaction", line.Name))
	return &dto.ScanResponse{Mode: "transaction", Line: &line}, nil
}

// ── Receipt lifecycle ───────────────────────────────────────────────────────

func (s *inventoryService) Receipt(_ context.Context) (*dto.ReceiptResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.txn.Lines()
	return &dto.ReceiptResponse{Lines: lines, Count: len(lines)}, nil
}

func (s *inventoryService) AdjustReceiptLine(_ context.Context, itemID string, delta int) (*model.ReceiptLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := s.txn.AdjustQuantity(itemID, delta)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *inventoryService) RemoveReceiptLine(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.txn.RemoveLine(itemID)
}

func (s *inventoryService) CancelReceipt(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txn.Cancel()
	return nil
}

func (s *inventoryService) CommitReceipt(ctx context.Context, stage string) (*engine.CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.txn.Commit(stage)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.sink.Success(fmt.Sprintf("Transaction completed for %s", stage))
	return &result, nil
}

// ── Snapshots and exports ───────────────────────────────────────────────────

func (s *inventoryService) Snapshot(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot.Serialize(s.ledger, s.stages)
}

// LoadSnapshot replaces the full state with the given document and
// persists it. The pending receipt is discarded — its lines may
// reference items that no longer exist.
func (s *inventoryService) LoadSnapshot(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := snapshot.Deserialize(data)
	if err != nil {
		return err
	}
	snapshot.Restore(doc, s.ledger, s.stages)
	s.txn.Cancel()
	s.persist(ctx)
	s.sink.Success("Data loaded successfully!")
	return nil
}

func (s *inventoryService) Report(_ context.Context) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot.Report(s.ledger, s.stages)
}

func (s *inventoryService) ExportCSV(_ context.Context, w io.Writer) error {
	s.mu.Lock()
	grid := snapshot.Report(s.ledger, s.stages)
	s.mu.Unlock()

	return export.WriteCSV(w, grid)
}

func (s *inventoryService) ExportPDF(_ context.Context) (string, error) {
	s.mu.Lock()
	grid := snapshot.Report(s.ledger, s.stages)
	s.mu.Unlock()

	path, err := export.WriteReportPDF(grid, s.pdfPath)
	if err != nil {
		return "", err
	}
	s.sink.Success("Inventory report exported.")
	return path, nil
}
