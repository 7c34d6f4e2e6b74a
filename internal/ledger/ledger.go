package ledger

import (
	"fmt"
	"strings"

	"github.com/FynnK/FestivalInventory/internal/model"
)

// Ledger owns the set of items. Iteration order is creation order,
// which is also the order rows appear in snapshots and reports.
//
// The ledger itself is not safe for concurrent use; the service layer
// serializes access so each external event runs to completion before
// the next one is processed.
type Ledger struct {
	items []model.Item
	index map[string]int
}

func New() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// CreateItem adds a new item with total == remaining == initialQuantity
// and empty usage. unitQuantity values below 1 are normalized to 1.
func (l *Ledger) CreateItem(id, name string, initialQuantity, unitQuantity int, unitType, description string) (model.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(name) == "" {
		return model.Item{}, fmt.Errorf("%w: barcode id and name are required", ErrInvalidInput)
	}
	if initialQuantity < 1 {
		return model.Item{}, fmt.Errorf("%w: initial quantity must be at least 1", ErrInvalidInput)
	}
	if _, exists := l.index[id]; exists {
		return model.Item{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	if unitQuantity < 1 {
		unitQuantity = 1
	}

	item := model.Item{
		ID:           id,
		Name:         name,
		Total:        initialQuantity,
		Remaining:    initialQuantity,
		Usage:        model.Usage{},
		UnitQuantity: unitQuantity,
		UnitType:     unitType,
		Description:  description,
	}
	l.items = append(l.items, item)
	l.index[id] = len(l.items) - 1
	return item.Clone(), nil
}

// AddStock increases total and remaining by quantity. Usage is
// untouched, so the invariant is preserved.
func (l *Ledger) AddStock(id string, quantity int) (model.Item, error) {
	if quantity < 1 {
		return model.Item{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	idx, ok := l.index[id]
	if !ok {
		return model.Item{}, fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	l.items[idx].Total += quantity
	l.items[idx].Remaining += quantity
	return l.items[idx].Clone(), nil
}

// DeleteItem removes the item unconditionally. Outstanding usage
// bookkeeping is discarded with it; stages are unaffected.
func (l *Ledger) DeleteItem(id string) error {
	idx, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	delete(l.index, id)
	for i := idx; i < len(l.items); i++ {
		l.index[l.items[i].ID] = i
	}
	return nil
}

// ApplyUsage moves quantity units from remaining to the stage's usage
// entry, creating the entry if absent.
func (l *Ledger) ApplyUsage(id, stage string, quantity int) error {
	idx, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	item := &l.items[idx]
	if quantity > item.Remaining {
		return &InsufficientStockError{
			ItemID:    item.ID,
			Name:      item.Name,
			Requested: quantity,
			Available: item.Remaining,
		}
	}
	item.Remaining -= quantity
	item.Usage[stage] += quantity
	return nil
}

// ReturnUsage moves the stage's full usage count back to remaining and
// removes the key. Idempotent: a missing key is a no-op, not an error.
// Zero-value pruning lives here so no caller can leave a stale entry.
func (l *Ledger) ReturnUsage(id, stage string) error {
	idx, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	item := &l.items[idx]
	qty, present := item.Usage[stage]
	if !present {
		return nil
	}
	item.Remaining += qty
	delete(item.Usage, stage)
	return nil
}

// Get returns a read-only copy of the item.
func (l *Ledger) Get(id string) (model.Item, bool) {
	idx, ok := l.index[id]
	if !ok {
		return model.Item{}, false
	}
	return l.items[idx].Clone(), true
}

// List returns read-only copies of all items in creation order.
func (l *Ledger) List() []model.Item {
	out := make([]model.Item, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.Clone())
	}
	return out
}

// Len reports the number of items.
func (l *Ledger) Len() int { return len(l.items) }

// Replace swaps the entire item set, used when loading a snapshot.
// The previous contents are discarded, not merged.
func (l *Ledger) Replace(items []model.Item) {
	l.items = make([]model.Item, 0, len(items))
	l.index = make(map[string]int, len(items))
	for _, item := range items {
		c := item.Clone()
		if c.Usage == nil {
			c.Usage = model.Usage{}
		}
		l.items = append(l.items, c)
		l.index[c.ID] = len(l.items) - 1
	}
}
