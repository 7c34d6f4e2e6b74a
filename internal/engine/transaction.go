// Package engine interprets scan events against the ledger: the
// transaction engine builds and commits multi-line receipts, the
// import engine restocks directly.
package engine

import (
	"fmt"

	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"

	"github.com/google/uuid"
)

// TransactionEngine builds one pending receipt at a time from scan
// events and commits it atomically against the ledger for a chosen
// stage. The ledger itself is not transactional across items, so the
// engine supplies the all-or-nothing guarantee with a validate pass
// followed by an apply pass.
type TransactionEngine struct {
	ledger *ledger.Ledger
	stages *ledger.StageRegistry
	lines  []model.ReceiptLine
}

// CommitResult describes a successfully applied receipt.
type CommitResult struct {
	TransactionID uuid.UUID           `json:"transactionId"`
	Stage         string              `json:"stage"`
	Lines         []model.ReceiptLine `json:"lines"`
}

func NewTransactionEngine(l *ledger.Ledger, stages *ledger.StageRegistry) *TransactionEngine {
	return &TransactionEngine{ledger: l, stages: stages}
}

// Scan upserts a receipt line for the scanned code: an existing line's
// quantity is bumped by one, otherwise a new line with quantity 1 is
// appended. An unknown code changes nothing and returns
// *ledger.UnknownItemError so the caller can route to item creation.
func (e *TransactionEngine) Scan(code string) (model.ReceiptLine, error) {
	item, ok := e.ledger.Get(code)
	if !ok {
		return model.ReceiptLine{}, &ledger.UnknownItemError{Code: code}
	}
	for i := range e.lines {
		if e.lines[i].ItemID == code {
			e.lines[i].Quantity++
			return e.lines[i], nil
		}
	}
	line := model.ReceiptLine{ItemID: item.ID, Name: item.Name, Quantity: 1}
	e.lines = append(e.lines, line)
	return line, nil
}

// AdjustQuantity changes a line's quantity by delta, clamped to a
// minimum of 1. Removing a line goes through RemoveLine, never here.
func (e *TransactionEngine) AdjustQuantity(itemID string, delta int) (model.ReceiptLine, error) {
	for i := range e.lines {
		if e.lines[i].ItemID == itemID {
			q := e.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			e.lines[i].Quantity = q
			return e.lines[i], nil
		}
	}
	return model.ReceiptLine{}, fmt.Errorf("%w: no receipt line for item %s", ledger.ErrNotFound, itemID)
}

// RemoveLine deletes the line outright regardless of quantity.
func (e *TransactionEngine) RemoveLine(itemID string) error {
	for i := range e.lines {
		if e.lines[i].ItemID == itemID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: no receipt line for item %s", ledger.ErrNotFound, itemID)
}

// Cancel discards the pending receipt.
func (e *TransactionEngine) Cancel() {
	e.lines = nil
}

// Lines returns a copy of the pending receipt lines in scan order.
func (e *TransactionEngine) Lines() []model.ReceiptLine {
	out := make([]model.ReceiptLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Commit applies every pending line to the ledger for the given stage.
//
// Two phases: first every line is validated against a single consistent
// read of current stock — the first shortfall aborts the whole commit
// with *ledger.InsufficientStockError and no line applied. Only after
// full validation does the apply pass run, so partial application
// cannot occur. On success the receipt resets to empty.
func (e *TransactionEngine) Commit(stage string) (CommitResult, error) {
	if len(e.lines) == 0 {
		return CommitResult{}, ledger.ErrEmptyReceipt
	}
	if stage == "" || !e.stages.Contains(stage) {
		return CommitResult{}, ledger.ErrNoLocationSelected
	}

	// Phase 1: validate all lines before touching anything.
	for _, line := range e.lines {
		item, ok := e.ledger.Get(line.ItemID)
		if !ok {
			return CommitResult{}, fmt.Errorf("%w: item %s", ledger.ErrNotFound, line.ItemID)
		}
		if line.Quantity > item.Remaining {
			return CommitResult{}, &ledger.InsufficientStockError{
				ItemID:    item.ID,
				Name:      item.Name,
				Requested: line.Quantity,
				Available: item.Remaining,
			}
		}
	}

	// Phase 2: apply. Validation guarantees every call succeeds.
	for _, line := range e.lines {
		if err := e.ledger.ApplyUsage(line.ItemID, stage, line.Quantity); err != nil {
			return CommitResult{}, err
		}
	}

	result := CommitResult{
		TransactionID: uuid.New(),
		Stage:         stage,
		Lines:         e.Lines(),
	}
	e.lines = nil
	return result, nil
}
