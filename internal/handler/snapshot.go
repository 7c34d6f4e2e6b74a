package handler

import (
	"io"
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/apierror"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/gin-gonic/gin"
)

// maxSnapshotBytes caps uploaded snapshot documents.
const maxSnapshotBytes = 16 << 20

type SnapshotHandler struct{ svc service.InventoryService }

func NewSnapshotHandler(svc service.InventoryService) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Download returns the serialized snapshot document, saved by consumers
// as festival_inventory.json.
func (h *SnapshotHandler) Download(c *gin.Context) {
	data, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="festival_inventory.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Upload replaces the entire state with the posted document.
func (h *SnapshotHandler) Upload(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSnapshotBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read request body"))
		return
	}
	if err := h.svc.LoadSnapshot(c.Request.Context(), data); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
