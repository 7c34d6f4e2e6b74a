package model

// Usage maps a stage name to the number of units consumed there.
// Entries are always > 0 — the ledger prunes a key the moment its
// count returns to zero, so callers can treat a missing key as zero.
type Usage map[string]int

// Total returns the sum of all per-stage counts.
func (u Usage) Total() int {
	sum := 0
	for _, qty := range u {
		sum += qty
	}
	return sum
}

// Clone returns an independent copy so read-only views cannot
// mutate ledger state.
func (u Usage) Clone() Usage {
	c := make(Usage, len(u))
	for stage, qty := range u {
		c[stage] = qty
	}
	return c
}

// Item is a trackable consumable identified by its barcode id.
// Invariant maintained by the ledger: Remaining + Usage.Total() == Total
// and 0 <= Remaining <= Total.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Total        int    `json:"total"`
	Remaining    int    `json:"remaining"`
	Usage        Usage  `json:"usage"`
	UnitQuantity int    `json:"unitQuantity"`
	UnitType     string `json:"unitType"`
	Description  string `json:"description"`
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	c := i
	c.Usage = i.Usage.Clone()
	return c
}
