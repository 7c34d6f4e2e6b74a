package model

// ReceiptLine is one pending consumption line in an in-progress
// transaction. Ephemeral — never persisted. At most one line exists
// per item id; repeated scans bump Quantity instead of appending.
type ReceiptLine struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
