package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/swiftmart/storefront/internal/domain"
)

// OrderGateway is the order-facing contract of the storefront API.
// Cancellation and deletion are addressed by the business order number,
// never by the storage identifier.
type OrderGateway interface {
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderNumber, reason string) (string, error)
	DeleteOrder(ctx context.Context, orderNumber string) (string, error)
}

type orderPayload struct {
	ID                 string   `json:"_id"`
	OrderNumber        string   `json:"orderId"`
	TrackingStatus     string   `json:"tracking_status"`
	IsCancelled        bool     `json:"isCancelled"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancellationDate   *string  `json:"cancellationDate,omitempty"`
	PaymentStatus      string   `json:"payment_status"`
	TotalAmount        float64  `json:"totalAmt"`
	ProductDetails     struct {
		Name   string   `json:"name"`
		Images []string `json:"image"`
	} `json:"product_details"`
	DeliveryAddress struct {
		AddressLine string `json:"address_line"`
		City        string `json:"city"`
		State       string `json:"state"`
		Pincode     string `json:"pincode"`
	} `json:"delivery_address"`
	OwnerName string `json:"userName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FetchOrders retrieves the full order collection
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var payload []orderPayload
	if _, err := c.do(ctx, "fetch orders", http.MethodGet, "/api/orders", nil, &payload); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, len(payload))
	for i, p := range payload {
		orders[i] = p.toDomain()
	}
	return orders, nil
}

// CancelOrder submits a cancellation with the resolved reason
func (c *Client) CancelOrder(ctx context.Context, orderNumber, reason string) (string, error) {
	body := map[string]string{
		"orderId":            orderNumber,
		"cancellationReason": reason,
	}
	return c.do(ctx, "cancel order", http.MethodPost, "/api/orders/cancel", body, nil)
}

// DeleteOrder issues the destructive delete, keyed by the business order
// number
func (c *Client) DeleteOrder(ctx context.Context, orderNumber string) (string, error) {
	return c.do(ctx, "delete order", http.MethodDelete, "/api/orders/"+orderNumber, nil, nil)
}

func (p orderPayload) toDomain() domain.Order {
	order := domain.Order{
		OrderNumber:        p.OrderNumber,
		TrackingStatus:     domain.TrackingStatus(p.TrackingStatus),
		IsCancelled:        p.IsCancelled,
		CancellationReason: p.CancellationReason,
		PaymentStatus:      p.PaymentStatus,
		TotalAmount:        p.TotalAmount,
		ProductDetails: domain.ProductDetails{
			Name:   p.ProductDetails.Name,
			Images: p.ProductDetails.Images,
		},
		DeliveryAddress: domain.DeliveryAddress{
			AddressLine: p.DeliveryAddress.AddressLine,
			City:        p.DeliveryAddress.City,
			State:       p.DeliveryAddress.State,
			Pincode:     p.DeliveryAddress.Pincode,
		},
		OwnerName: p.OwnerName,
	}

	// Storage IDs are server-assigned; a malformed one is kept as zero
	// rather than dropping the whole order.
	if id, err := uuid.Parse(p.ID); err == nil {
		order.ID = id
	}
	if p.CancellationDate != nil {
		if ts, err := time.Parse(time.RFC3339, *p.CancellationDate); err == nil {
			order.CancellationDate = &ts
		}
	}
	if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		order.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
		order.UpdatedAt = ts
	}

	return order
}
