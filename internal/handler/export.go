package handler

import (
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct{ svc service.InventoryService }

func NewExportHandler(svc service.InventoryService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Report returns the tabular projection as a JSON grid (header row first).
func (h *ExportHandler) Report(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Report(c.Request.Context()))
}

// CSV streams the report as a spreadsheet-compatible file.
func (h *ExportHandler) CSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="festival_inventory.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := h.svc.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already out; all we can do is log through the chain.
		c.Error(err)
	}
}

// PDF renders the report to the configured storage path.
func (h *ExportHandler) PDF(c *gin.Context) {
	path, err := h.svc.ExportPDF(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ExportPDFResponse{Path: path})
}
