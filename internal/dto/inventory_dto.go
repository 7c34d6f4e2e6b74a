package dto

import "github.com/FynnK/FestivalInventory/internal/model"

// ── Requests ─────────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	UnitQuantity int    `json:"unitQuantity" validate:"omitempty,min=1"`
	UnitType     string `json:"unitType"`
	Description  string `json:"description"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type ScanRequest struct {
	Code       string `json:"code" validate:"required"`
	ImportMode bool   `json:"importMode"`
}

type AdjustLineRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type CommitRequest struct {
	Stage string `json:"stage" validate:"required"`
}

type AddStageRequest struct {
	Name string `json:"name" validate:"required"`
}

// ── Responses ────────────────────────────────────────────────────────────────

type ItemResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Total          int         `json:"total"`
	Remaining      int         `json:"remaining"`
	Usage          model.Usage `json:"usage"`
	UnitQuantity   int         `json:"unitQuantity"`
	UnitType       string      `json:"unitType"`
	Description    string      `json:"description"`
	UnitsAvailable int         `json:"unitsAvailable"`
}

func ItemToResponse(i model.Item) *ItemResponse {
	return &ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Total:          i.Total,
		Remaining:      i.Remaining,
		Usage:          i.Usage,
		UnitQuantity:   i.UnitQuantity,
		UnitType:       i.UnitType,
		Description:    i.Description,
		UnitsAvailable: i.Remaining * i.UnitQuantity,
	}
}

type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int            `json:"total"`
}

type StagesResponse struct {
	Stages           []string `json:"stages"`
	DefaultSelection string   `json:"defaultSelection"`
}

// ScanResponse reports what a scan did: in transaction mode Line is
// the upserted receipt line, in import mode Item is the restocked item.
type ScanResponse struct {
	Mode string             `json:"mode"` // "transaction" | "import"
	Line *model.ReceiptLine `json:"line,omitempty"`
	Item *ItemResponse      `json:"item,omitempty"`
}

type ReceiptResponse struct {
	Lines []model.ReceiptLine `json:"lines"`
	Count int                 `json:"count"`
}

type ExportPDFResponse struct {
	Path string `json:"path"`
}
