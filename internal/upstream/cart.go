package upstream

import (
	"context"
	"net/http"

	"github.com/swiftmart/storefront/internal/domain"
)

// CartGateway is the cart-facing contract of the storefront API. All
// calls communicate success/failure plus an opaque display message.
type CartGateway interface {
	FetchCart(ctx context.Context) (domain.CartSnapshot, error)
	AddToCart(ctx context.Context, productID string) (string, error)
	UpdateCartLine(ctx context.Context, lineID string, quantity int) (string, error)
	DeleteCartLine(ctx context.Context, lineID string) (string, error)
}

type cartLinePayload struct {
	LineID    string `json:"_id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// FetchCart retrieves the full cart. Idempotent, safe to call repeatedly.
func (c *Client) FetchCart(ctx context.Context) (domain.CartSnapshot, error) {
	var payload []cartLinePayload
	if _, err := c.do(ctx, "fetch cart", http.MethodGet, "/api/cart", nil, &payload); err != nil {
		return nil, err
	}

	snapshot := make(domain.CartSnapshot, len(payload))
	for i, line := range payload {
		snapshot[i] = domain.CartLine{
			LineID:    line.LineID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}
	return snapshot, nil
}

// AddToCart creates a new cart line for the product
func (c *Client) AddToCart(ctx context.Context, productID string) (string, error) {
	body := map[string]string{"productId": productID}
	return c.do(ctx, "add to cart", http.MethodPost, "/api/cart", body, nil)
}

// UpdateCartLine sets the quantity of an existing line. Quantity zero is
// never sent; line removal goes through DeleteCartLine.
func (c *Client) UpdateCartLine(ctx context.Context, lineID string, quantity int) (string, error) {
	body := map[string]interface{}{"quantity": quantity}
	return c.do(ctx, "update cart line", http.MethodPut, "/api/cart/items/"+lineID, body, nil)
}

// DeleteCartLine removes a line entirely
func (c *Client) DeleteCartLine(ctx context.Context, lineID string) (string, error) {
	return c.do(ctx, "delete cart line", http.MethodDelete, "/api/cart/items/"+lineID, nil, nil)
}
