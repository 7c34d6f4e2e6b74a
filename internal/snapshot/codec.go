// Package snapshot serializes the full ledger + stage state to the
// portable JSON document and projects it into the flat tabular report.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/model"
)

// Serialize renders the current state as the persisted document:
// every item in ledger order plus the ordered stage list. No derived
// fields are included.
func Serialize(l *ledger.Ledger, stages *ledger.StageRegistry) ([]byte, error) {
	doc := model.Snapshot{
		Inventory: l.List(),
		Stages:    stages.List(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Deserialize parses a snapshot document. A document that cannot be
// parsed as the expected shape fails with ledger.ErrMalformedDocument;
// missing inventory or stages fields default to empty collections.
func Deserialize(data []byte) (model.Snapshot, error) {
	var doc model.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ledger.ErrMalformedDocument, err)
	}
	if doc.Inventory == nil {
		doc.Inventory = []model.Item{}
	}
	if doc.Stages == nil {
		doc.Stages = []string{}
	}
	for i := range doc.Inventory {
		if doc.Inventory[i].Usage == nil {
			doc.Inventory[i].Usage = model.Usage{}
		}
	}
	return doc, nil
}

// Restore replaces the entire ledger and stage registry contents with
// the document's — a full overwrite, never a merge.
func Restore(doc model.Snapshot, l *ledger.Ledger, stages *ledger.StageRegistry) {
	l.Replace(doc.Inventory)
	stages.Replace(doc.Stages)
}
