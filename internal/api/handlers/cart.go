package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/cart"
	"github.com/swiftmart/storefront/internal/domain"
)

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// DecrementRequest carries the quantity currently displayed to the user;
// the ledger decides between a quantity update and a removal.
type DecrementRequest struct {
	CurrentQuantity int `json:"currentQuantity" binding:"required,min=1"`
}

// CartLineResponse represents one cart line in responses
type CartLineResponse struct {
	LineID    string `json:"lineId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func toCartResponse(snapshot domain.CartSnapshot) []CartLineResponse {
	lines := make([]CartLineResponse, len(snapshot))
	for i, line := range snapshot {
		lines[i] = CartLineResponse{
			LineID:    line.LineID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}
	return lines
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(ledger *cart.Ledger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ledger.Refresh(c.Request.Context()); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": toCartResponse(ledger.Snapshot())})
	}
}

// HandleAddToCart handles POST /v1/cart/items
func HandleAddToCart(ledger *cart.Ledger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		msg, err := ledger.AddProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": msg,
			"items":   toCartResponse(ledger.Snapshot()),
		})
	}
}

// HandleIncrementItem handles POST /v1/cart/items/:lineId/increment
func HandleIncrementItem(ledger *cart.Ledger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Param("lineId")

		quantity, err := ledger.Increment(c.Request.Context(), lineID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"lineId":   lineID,
			"quantity": quantity,
			"items":    toCartResponse(ledger.Snapshot()),
		})
	}
}

// HandleDecrementItem handles POST /v1/cart/items/:lineId/decrement
func HandleDecrementItem(ledger *cart.Ledger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Param("lineId")

		var req DecrementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := ledger.Decrement(c.Request.Context(), lineID, req.CurrentQuantity); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": toCartResponse(ledger.Snapshot())})
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:lineId
func HandleRemoveItem(ledger *cart.Ledger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Param("lineId")

		if err := ledger.Remove(c.Request.Context(), lineID); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": toCartResponse(ledger.Snapshot())})
	}
}
