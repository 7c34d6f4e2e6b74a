package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"
	"github.com/FynnK/FestivalInventory/internal/notify"
	"github.com/FynnK/FestivalInventory/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory SnapshotStore stub ─────────────────────────────────────────────

type stubStore struct {
	saves   [][]byte
	failing bool
}

func (s *stubStore) Save(_ context.Context, data []byte) error {
	if s.failing {
		return errors.New("disk full")
	}
	s.saves = append(s.saves, append([]byte(nil), data...))
	return nil
}

func (s *stubStore) Load(_ context.Context) ([]byte, error) {
	if len(s.saves) == 0 {
		return nil, store.ErrNoSnapshot
	}
	return s.saves[len(s.saves)-1], nil
}

var _ store.SnapshotStore = (*stubStore)(nil)

func (s *stubStore) lastDoc(t *testing.T) model.Snapshot {
	t.Helper()
	require.NotEmpty(t, s.saves)
	var doc model.Snapshot
	require.NoError(t, json.Unmarshal(s.saves[len(s.saves)-1], &doc))
	return doc
}

func buildSvc(t *testing.T) (InventoryService, *stubStore) {
	t.Helper()
	st := &stubStore{}
	svc := NewInventoryService(st, notify.Discard{}, t.TempDir())
	return svc, st
}

func seedItem(t *testing.T, svc InventoryService, id, name string, qty int) {
	t.Helper()
	_, err := svc.CreateItem(context.Background(), dto.CreateItemRequest{
		ID: id, Name: name, Quantity: qty,
	})
	require.NoError(t, err)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestMutationsWriteThrough(t *testing.T) {
	svc, st := buildSvc(t)
	ctx := context.Background()

	seedItem(t, svc, "111", "Tape", 5)
	assert.Len(t, st.saves, 1)

	_, err := svc.AddStock(ctx, "111", 2)
	require.NoError(t, err)
	assert.Len(t, st.saves, 2)

	require.NoError(t, svc.AddStage(ctx, "Main"))
	assert.Len(t, st.saves, 3)

	doc := st.lastDoc(t)
	require.Len(t, doc.Inventory, 1)
	assert.Equal(t, 7, doc.Inventory[0].Total)
	assert.Equal(t, []string{"Main"}, doc.Stages)
}

func TestReceiptEditsDoNotPersist(t *testing.T) {
	svc, st := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "111", "Tape", 5)
	saves := len(st.saves)

	_, err := svc.Scan(ctx, "111", false)
	require.NoError(t, err)
	_, err = svc.AdjustReceiptLine(ctx, "111", 2)
	require.NoError(t, err)
	require.NoError(t, svc.CancelReceipt(ctx))

	// The pending receipt is ephemeral — nothing new was written.
	assert.Len(t, st.saves, saves)
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	svc, st := buildSvc(t)
	ctx := context.Background()
	st.failing = true

	seedItem(t, svc, "111", "Tape", 5)
	assert.Empty(t, st.saves)

	// The mutation still took effect in memory.
	item, err := svc.GetItem(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Total)

	// The next successful write carries the full current state.
	st.failing = false
	_, err = svc.AddStock(ctx, "111", 1)
	require.NoError(t, err)
	doc := st.lastDoc(t)
	require.Len(t, doc.Inventory, 1)
	assert.Equal(t, 6, doc.Inventory[0].Total)
}

func TestScan_RoutesByMode(t *testing.T) {
	svc, _ := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "X123", "Tape", 5)

	// Import mode increments stock.
	resp, err := svc.Scan(ctx, "X123", true)
	require.NoError(t, err)
	assert.Equal(t, "import", resp.Mode)
	require.NotNil(t, resp.Item)
	assert.Equal(t, 6, resp.Item.Total)

	resp, err = svc.Scan(ctx, "X123", true)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Item.Total)
	assert.Equal(t, 7, resp.Item.Remaining)

	// Transaction mode builds the receipt without touching stock.
	resp, err = svc.Scan(ctx, "X123", false)
	require.NoError(t, err)
	assert.Equal(t, "transaction", resp.Mode)
	require.NotNil(t, resp.Line)
	assert.Equal(t, 1, resp.Line.Quantity)

	item, err := svc.GetItem(ctx, "X123")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Remaining)
}

func TestScan_UnknownCodePropagates(t *testing.T) {
	svc, st := buildSvc(t)
	saves := len(st.saves)

	for _, importMode := range []bool{true, false} {
		_, err := svc.Scan(context.Background(), "nope", importMode)
		var unknown *ledger.UnknownItemError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nope", unknown.Code)
	}
	assert.Len(t, st.saves, saves)
}

func TestCommitReceipt(t *testing.T) {
	svc, st := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "111", "Tape", 5)
	require.NoError(t, svc.AddStage(ctx, "Main"))
	saves := len(st.saves)

	_, err := svc.Scan(ctx, "111", false)
	require.NoError(t, err)
	_, err = svc.AdjustReceiptLine(ctx, "111", 1)
	require.NoError(t, err)

	result, err := svc.CommitReceipt(ctx, "Main")
	require.NoError(t, err)
	assert.Equal(t, "Main", result.Stage)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2, result.Lines[0].Quantity)

	// Commit persisted exactly once.
	assert.Len(t, st.saves, saves+1)
	doc := st.lastDoc(t)
	assert.Equal(t, 3, doc.Inventory[0].Remaining)
	assert.Equal(t, model.Usage{"Main": 2}, doc.Inventory[0].Usage)

	// Receipt is empty again.
	receipt, err := svc.Receipt(ctx)
	require.NoError(t, err)
	assert.Zero(t, receipt.Count)
}

func TestDeleteItem_DropsReceiptLine(t *testing.T) {
	svc, _ := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "111", "Tape", 5)

	_, err := svc.Scan(ctx, "111", false)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(ctx, "111"))

	receipt, err := svc.Receipt(ctx)
	require.NoError(t, err)
	assert.Zero(t, receipt.Count)
}

func TestRemoveStage_ReturnsUsage(t *testing.T) {
	svc, _ := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "111", "Tape", 10)
	require.NoError(t, svc.AddStage(ctx, "Main"))

	_, err := svc.Scan(ctx, "111", false)
	require.NoError(t, err)
	_, err = svc.AdjustReceiptLine(ctx, "111", 5)
	require.NoError(t, err)
	_, err = svc.CommitReceipt(ctx, "Main")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveStage(ctx, "Main"))

	item, err := svc.GetItem(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 10, item.Remaining)
	assert.Empty(t, item.Usage)

	stages, err := svc.ListStages(ctx)
	require.NoError(t, err)
	assert.Empty(t, stages.Stages)
	assert.Equal(t, "", stages.DefaultSelection)
}

func TestLoadSnapshot_ReplacesStateAndPersists(t *testing.T) {
	svc, st := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "old", "Old", 1)

	doc := model.Snapshot{
		Inventory: []model.Item{{ID: "new", Name: "New", Total: 3, Remaining: 3, Usage: model.Usage{}}},
		Stages:    []string{"Main"},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	require.NoError(t, svc.LoadSnapshot(ctx, data))

	_, err = svc.GetItem(ctx, "old")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	item, err := svc.GetItem(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, 3, item.Total)

	persisted := st.lastDoc(t)
	assert.Equal(t, []string{"Main"}, persisted.Stages)
}

func TestLoadSnapshot_MalformedLeavesStateUntouched(t *testing.T) {
	svc, _ := buildSvc(t)
	ctx := context.Background()
	seedItem(t, svc, "111", "Tape", 5)

	err := svc.LoadSnapshot(ctx, []byte("not json"))
	assert.ErrorIs(t, err, ledger.ErrMalformedDocument)

	item, err := svc.GetItem(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Total)
}

func TestRestore(t *testing.T) {
	st := &stubStore{}
	svc := NewInventoryService(st, notify.Discard{}, t.TempDir())
	seedItem(t, svc, "111", "Tape", 5)

	// A second service instance backed by the same store picks the state up.
	svc2 := NewInventoryService(st, notify.Discard{}, t.TempDir())
	require.NoError(t, svc2.Restore(context.Background()))
	item, err := svc2.GetItem(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Total)

	// No snapshot at all starts empty without error.
	svc3 := NewInventoryService(&stubStore{}, notify.Discard{}, t.TempDir())
	require.NoError(t, svc3.Restore(context.Background()))
	items, err := svc3.ListItems(context.Background())
	require.NoError(t, err)
	assert.Zero(t, items.Total)
}

func TestExportCSV(t *testing.T) {
	svc, _ := buildSvc(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStage(ctx, "Main"))
	seedItem(t, svc, "111", "Tape", 5)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))
	out := buf.String()
	assert.Contains(t, out, "Barcode ID,Item Name,Description")
	assert.Contains(t, out, "111,Tape")
}
