package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ModeHandler exposes the import-mode flag for the hardware scanner
// path. The flag lives outside the core state machine; HTTP scans
// carry their own mode in the request body instead.
type ModeHandler struct{ importMode *atomic.Bool }

func NewModeHandler(importMode *atomic.Bool) *ModeHandler {
	return &ModeHandler{importMode: importMode}
}

type modeBody struct {
	ImportMode bool `json:"importMode"`
}

func (h *ModeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, modeBody{ImportMode: h.importMode.Load()})
}

func (h *ModeHandler) Set(c *gin.Context) {
	var req modeBody
	if !bindAndValidate(c, &req) {
		return
	}
	h.importMode.Store(req.ImportMode)
	c.JSON(http.StatusOK, modeBody{ImportMode: h.importMode.Load()})
}
