package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/fadheel-alt/resi-checker/internal/server/http/handlers"
	"github.com/fadheel-alt/resi-checker/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WarehouseFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	scanHandler := handlers.NewScanHandler(facade)
	importHandler := handlers.NewImportHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, facade)
	historyHandler := handlers.NewHistoryHandler(facade)

	api := engine.Group("/api")
	api.POST("/scan", scanHandler.Scan)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/stats", orderHandler.Stats)
	orders.POST("/import", importHandler.Import)
	orders.POST("/extract", importHandler.Extract)
	orders.POST("/reset-scan", orderHandler.ResetScan)
	orders.POST("/archive", orderHandler.Archive)
	orders.DELETE("", orderHandler.ClearAll)

	history := api.Group("/history")
	history.GET("", historyHandler.List)
	history.POST("/:id/restore", historyHandler.Restore)
	history.DELETE("/:id", historyHandler.Delete)
	history.DELETE("", historyHandler.DeleteBatch)
	history.POST("/purge", historyHandler.Purge)

	return engine
}
