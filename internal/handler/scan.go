package handler

import (
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/gin-gonic/gin"
)

// ScanHandler accepts decoded barcodes submitted over HTTP (manual
// entry or a browser-side camera decoder). Hardware scanners go
// through the scan pump instead, but both paths end in the same
// service call.
type ScanHandler struct{ svc service.InventoryService }

func NewScanHandler(svc service.InventoryService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

func (h *ScanHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Scan(c.Request.Context(), req.Code, req.ImportMode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
