package engine

import (
	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"
)

// ImportEngine interprets scans while import mode is active: each scan
// of a known code adds one unit of stock instead of recording
// consumption. The engine is stateless — the mode flag belongs to the
// routing layer.
type ImportEngine struct {
	ledger *ledger.Ledger
}

func NewImportEngine(l *ledger.Ledger) *ImportEngine {
	return &ImportEngine{ledger: l}
}

// Scan increments the matching item's stock by one. An unknown code
// returns *ledger.UnknownItemError, the same contract as the
// transaction engine, so the caller routes both through the same
// item-creation flow.
func (e *ImportEngine) Scan(code string) (model.Item, error) {
	if _, ok := e.ledger.Get(code); !ok {
		return model.Item{}, &ledger.UnknownItemError{Code: code}
	}
	return e.ledger.AddStock(code, 1)
}
