package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/config"
	"github.com/swiftmart/storefront/internal/upstream"
)

func main() {
	var targetOrder string
	if len(os.Args) > 1 {
		targetOrder = os.Args[1]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Create storefront client
	client := upstream.NewClient(cfg.StoreAPI, logger)

	orders, err := client.FetchOrders(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
		os.Exit(1)
	}

	found := false
	for _, order := range orders {
		if targetOrder != "" && order.OrderNumber != targetOrder {
			continue
		}
		found = true

		fmt.Printf("Order %s\n", order.OrderNumber)
		fmt.Printf("  Product:  %s\n", order.ProductDetails.Name)
		fmt.Printf("  Status:   %s\n", order.TrackingStatus)
		fmt.Printf("  Payment:  %s\n", order.PaymentStatus)
		fmt.Printf("  Total:    %.2f\n", order.TotalAmount)
		if order.IsCancelled {
			reason := ""
			if order.CancellationReason != nil {
				reason = *order.CancellationReason
			}
			if order.CancellationDate != nil {
				fmt.Printf("  Cancelled: %s (%s)\n", reason, order.CancellationDate.Format("2006-01-02"))
			} else {
				fmt.Printf("  Cancelled: %s\n", reason)
			}
		}
		fmt.Println()
	}

	if !found {
		if targetOrder != "" {
			fmt.Printf("Order '%s' not found.\n", targetOrder)
			os.Exit(1)
		}
		fmt.Println("No orders found.")
	}
}
