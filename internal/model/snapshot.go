package model

// Snapshot is the persisted document: the full inventory plus the
// ordered stage list. No derived fields are stored — everything else
// is recomputed from these two collections.
type Snapshot struct {
	Inventory []Item   `json:"inventory"`
	Stages    []string `json:"stages"`
}
