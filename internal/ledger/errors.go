// Package ledger holds the stateful core of the inventory system: the
// item ledger and the stage registry. Every operation either fully
// succeeds (and the stock invariant holds) or fully fails with one of
// the errors below, leaving state untouched.
package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed or missing required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateID is returned when creating an item whose barcode id already exists.
	ErrDuplicateID = errors.New("barcode id already exists")
	// ErrDuplicateName is returned when adding a stage that already exists.
	ErrDuplicateName = errors.New("stage already exists")
	// ErrNotFound is returned when the referenced item or stage does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyReceipt is returned when committing a receipt with no lines.
	ErrEmptyReceipt = errors.New("receipt has no lines")
	// ErrNoLocationSelected is returned when committing without a known stage.
	ErrNoLocationSelected = errors.New("no stage selected")
	// ErrMalformedDocument is returned when a snapshot cannot be parsed.
	ErrMalformedDocument = errors.New("malformed snapshot document")
)

// InsufficientStockError reports a commit-time or usage-time shortfall.
// Available is the remaining stock at validation time.
type InsufficientStockError struct {
	ItemID    string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, only %d available",
		e.Name, e.Requested, e.Available)
}

// UnknownItemError signals a scanned code with no matching item. The
// caller is expected to route to the item-creation flow; no state was
// changed.
type UnknownItemError struct {
	Code string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("no item with barcode %q", e.Code)
}
