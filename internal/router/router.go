package router

import (
	"sync/atomic"

	"github.com/FynnK/FestivalInventory/internal/config"
	"github.com/FynnK/FestivalInventory/internal/handler"
	"github.com/FynnK/FestivalInventory/internal/middleware"
	"github.com/FynnK/FestivalInventory/internal/service"
	"github.com/FynnK/FestivalInventory/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
func New(cfg *config.Config, svc service.InventoryService, st store.SnapshotStore, importMode *atomic.Bool) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(svc)
	stagesH := handler.NewStagesHandler(svc)
	scanH := handler.NewScanHandler(svc)
	receiptH := handler.NewReceiptHandler(svc)
	snapshotH := handler.NewSnapshotHandler(svc)
	exportH := handler.NewExportHandler(svc)
	modeH := handler.NewModeHandler(importMode)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(st))

	v1 := r.Group("/v1")
	{
		v1.GET("/items", itemsH.List)
		v1.POST("/items", itemsH.Create)
		v1.GET("/items/:id", itemsH.Get)
		v1.DELETE("/items/:id", itemsH.Delete)
		v1.PATCH("/items/:id/stock", itemsH.AddStock)

		v1.GET("/stages", stagesH.List)
		v1.POST("/stages", stagesH.Add)
		v1.DELETE("/stages/:name", stagesH.Remove)

		v1.POST("/scan", scanH.Scan)

		v1.GET("/mode", modeH.Get)
		v1.PUT("/mode", modeH.Set)

		v1.GET("/receipt", receiptH.Get)
		v1.PATCH("/receipt/items/:id", receiptH.AdjustLine)
		v1.DELETE("/receipt/items/:id", receiptH.RemoveLine)
		v1.DELETE("/receipt", receiptH.Cancel)
		v1.POST("/receipt/commit", receiptH.Commit)

		v1.GET("/snapshot", snapshotH.Download)
		v1.PUT("/snapshot", snapshotH.Upload)

		v1.GET("/export/report", exportH.Report)
		v1.GET("/export/csv", exportH.CSV)
		v1.POST("/export/pdf", exportH.PDF)
	}

	return r
}
