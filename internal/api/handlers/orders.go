package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/internal/order"
)

// CancelOrderRequest represents the cancellation payload
type CancelOrderRequest struct {
	ReasonCode       string `json:"reasonCode" binding:"required"`
	CustomReasonText string `json:"customReasonText"`
}

// DeleteOrderRequest carries the typed-name confirmation for a delete
type DeleteOrderRequest struct {
	TypedName string `json:"typedName" binding:"required"`
}

// OrderResponse represents one order in responses. The storage ID keys
// list rendering; the order number addresses lifecycle endpoints.
type OrderResponse struct {
	ID                 string                 `json:"id"`
	OrderNumber        string                 `json:"orderNumber"`
	TrackingStatus     domain.TrackingStatus  `json:"trackingStatus"`
	IsCancelled        bool                   `json:"isCancelled"`
	CancellationReason *string                `json:"cancellationReason,omitempty"`
	CancellationDate   *string                `json:"cancellationDate,omitempty"`
	PaymentStatus      string                 `json:"paymentStatus,omitempty"`
	TotalAmount        float64                `json:"totalAmount"`
	ProductName        string                 `json:"productName"`
	ProductImages      []string               `json:"productImages,omitempty"`
	DeliveryAddress    map[string]interface{} `json:"deliveryAddress"`
	OwnerName          string                 `json:"ownerName,omitempty"`
}

func toOrderResponse(o domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID.String(),
		OrderNumber:        o.OrderNumber,
		TrackingStatus:     o.TrackingStatus,
		IsCancelled:        o.IsCancelled,
		CancellationReason: o.CancellationReason,
		PaymentStatus:      o.PaymentStatus,
		TotalAmount:        o.TotalAmount,
		ProductName:        o.ProductDetails.Name,
		ProductImages:      o.ProductDetails.Images,
		DeliveryAddress: map[string]interface{}{
			"address_line": o.DeliveryAddress.AddressLine,
			"city":         o.DeliveryAddress.City,
			"state":        o.DeliveryAddress.State,
			"pincode":      o.DeliveryAddress.Pincode,
		},
		OwnerName: o.OwnerName,
	}
	if o.CancellationDate != nil {
		formatted := o.CancellationDate.Format("2006-01-02T15:04:05Z07:00")
		resp.CancellationDate = &formatted
	}
	return resp
}

// HandleListOrders handles GET /v1/orders
func HandleListOrders(orders *order.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orders.Refresh(c.Request.Context()); err != nil {
			respondError(c, logger, err)
			return
		}

		collection := orders.Orders()
		responses := make([]OrderResponse, len(collection))
		for i, o := range collection {
			responses[i] = toOrderResponse(o)
		}

		c.JSON(http.StatusOK, gin.H{"orders": responses})
	}
}

// HandleCancelOrder handles POST /v1/orders/:orderNumber/cancel
func HandleCancelOrder(orders *order.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")

		var req CancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		msg, err := orders.Cancel(c.Request.Context(), domain.CancellationRequest{
			OrderNumber:      orderNumber,
			ReasonCode:       domain.CancellationReason(req.ReasonCode),
			CustomReasonText: req.CustomReasonText,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		updated, _ := orders.Get(orderNumber)
		c.JSON(http.StatusOK, gin.H{
			"message": msg,
			"order":   toOrderResponse(updated),
		})
	}
}

// HandleDeleteOrder handles DELETE /v1/admin/orders/:orderNumber
func HandleDeleteOrder(orders *order.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")

		var req DeleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		conf, err := orders.StageDeletion(orderNumber)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		conf.TypedName = req.TypedName

		msg, err := orders.ConfirmDelete(c.Request.Context(), conf)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
