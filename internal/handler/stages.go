package handler

import (
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/dto"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/gin-gonic/gin"
)

type StagesHandler struct{ svc service.InventoryService }

func NewStagesHandler(svc service.InventoryService) *StagesHandler {
	return &StagesHandler{svc: svc}
}

func (h *StagesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListStages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StagesHandler) Add(c *gin.Context) {
	var req dto.AddStageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AddStage(c.Request.Context(), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Remove deletes the stage. Every unit the stage consumed is returned
// to stock before the name disappears.
func (h *StagesHandler) Remove(c *gin.Context) {
	if err := h.svc.RemoveStage(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
