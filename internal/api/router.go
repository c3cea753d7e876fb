package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/api/handlers"
	"github.com/swiftmart/storefront/internal/cart"
	"github.com/swiftmart/storefront/internal/config"
	"github.com/swiftmart/storefront/internal/order"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, ledger *cart.Ledger, orders *order.Manager, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/cart", handlers.HandleGetCart(ledger, logger))
		v1.POST("/cart/items", handlers.HandleAddToCart(ledger, logger))
		v1.POST("/cart/items/:lineId/increment", handlers.HandleIncrementItem(ledger, logger))
		v1.POST("/cart/items/:lineId/decrement", handlers.HandleDecrementItem(ledger, logger))
		v1.DELETE("/cart/items/:lineId", handlers.HandleRemoveItem(ledger, logger))

		v1.GET("/orders", handlers.HandleListOrders(orders, logger))
		v1.POST("/orders/:orderNumber/cancel", handlers.HandleCancelOrder(orders, logger))

		// Admin routes (destructive, typed-name confirmation required)
		admin := v1.Group("/admin")
		{
			admin.DELETE("/orders/:orderNumber", handlers.HandleDeleteOrder(orders, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
