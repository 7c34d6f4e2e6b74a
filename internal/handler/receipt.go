package handler

import (
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct{ svc service.InventoryService }

func NewReceiptHandler(svc service.InventoryService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

func (h *ReceiptHandler) Get(c *gin.Context) {
	resp, err := h.svc.Receipt(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReceiptHandler) AdjustLine(c *gin.Context) {
	var req dto.AdjustLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	line, err := h.svc.AdjustReceiptLine(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (h *ReceiptHandler) RemoveLine(c *gin.Context) {
	if err := h.svc.RemoveReceiptLine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReceiptHandler) Cancel(c *gin.Context) {
	if err := h.svc.CancelReceipt(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Commit applies the whole receipt for one stage, all lines or none.
func (h *ReceiptHandler) Commit(c *gin.Context) {
	var req dto.CommitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.CommitReceipt(c.Request.Context(), req.Stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
