package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/FynnK/FestivalInventory/internal/store"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. The snapshot store is
// probed with a short timeout; a store outage degrades the status but
// the in-memory inventory keeps working.
func Health(st store.SnapshotStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "ok"
		if _, err := st.Load(ctx); err != nil && !errors.Is(err, store.ErrNoSnapshot) {
			storeStatus = "error"
		}

		status := http.StatusOK
		if storeStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"store": storeStatus,
		})
	}
}
