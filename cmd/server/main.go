package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/api"
	"github.com/swiftmart/storefront/internal/cart"
	"github.com/swiftmart/storefront/internal/config"
	"github.com/swiftmart/storefront/internal/order"
	"github.com/swiftmart/storefront/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("store_api", cfg.StoreAPI.BaseURL),
	)

	// Initialize components
	client := upstream.NewClient(cfg.StoreAPI, logger)
	ledger := cart.NewLedger(client, logger)
	orders := order.NewManager(client, logger)

	router := api.NewRouter(cfg, ledger, orders, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
