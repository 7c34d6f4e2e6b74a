package ledger

import (
	"fmt"
	"slices"
	"strings"
)

// StageRegistry owns the ordered collection of consumption stages.
// Order is display/selection order only; the first entry is the
// default selection.
type StageRegistry struct {
	names []string
}

func NewStageRegistry() *StageRegistry {
	return &StageRegistry{}
}

// Add appends a stage name. Names are matched case-sensitively and
// trimmed of surrounding whitespace before any check.
func (r *StageRegistry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: stage name cannot be empty", ErrInvalidInput)
	}
	if slices.Contains(r.names, name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.names = append(r.names, name)
	return nil
}

// Remove deletes the stage after returning all of its usage to stock.
// The reconciliation pass runs over every item in the ledger before
// the name disappears, so no item is left with a stranded usage entry.
func (r *StageRegistry) Remove(name string, l *Ledger) error {
	idx := slices.Index(r.names, name)
	if idx < 0 {
		return fmt.Errorf("%w: stage %s", ErrNotFound, name)
	}
	for _, item := range l.items {
		// ReturnUsage is a no-op for items without an entry for this stage.
		if err := l.ReturnUsage(item.ID, name); err != nil {
			return err
		}
	}
	r.names = slices.Delete(r.names, idx, idx+1)
	return nil
}

// Contains reports whether the stage exists (case-sensitive).
func (r *StageRegistry) Contains(name string) bool {
	return slices.Contains(r.names, name)
}

// List returns the stage names in order.
func (r *StageRegistry) List() []string {
	return slices.Clone(r.names)
}

// DefaultSelection returns the first stage, or "" when none exist.
func (r *StageRegistry) DefaultSelection() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}

// Replace swaps the entire stage list, used when loading a snapshot.
func (r *StageRegistry) Replace(names []string) {
	r.names = slices.Clone(names)
}
