package order

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/pkg/errors"
)

// ResolveReason validates the reason protocol and returns the reason
// text to submit: the custom text when the code is Other, else the
// enumerated text of the code itself.
func ResolveReason(req domain.CancellationRequest) (string, error) {
	if req.ReasonCode == "" {
		return "", &errors.ErrValidation{Field: "reasonCode", Message: "a cancellation reason is required"}
	}
	if !req.ReasonCode.IsValid() {
		return "", &errors.ErrValidation{Field: "reasonCode", Message: "unknown cancellation reason"}
	}
	if req.ReasonCode == domain.ReasonOther {
		custom := strings.TrimSpace(req.CustomReasonText)
		if custom == "" {
			return "", &errors.ErrValidation{Field: "customReasonText", Message: "a reason is required when selecting Other"}
		}
		return custom, nil
	}
	return string(req.ReasonCode), nil
}

// Cancel validates and submits a cancellation. Disallowed states are
// rejected locally before any network call: the server enforces the same
// rule, this is the fast-fail mirror of it. On success the full order
// collection is refetched. The transition is one-way; a cancelled order
// stays visible but can never be cancelled again.
func (m *Manager) Cancel(ctx context.Context, req domain.CancellationRequest) (string, error) {
	reason, err := ResolveReason(req)
	if err != nil {
		return "", err
	}

	order, err := m.Get(req.OrderNumber)
	if err != nil {
		return "", err
	}

	if !order.CanCancel() {
		return "", &errors.ErrCancellationNotAllowed{
			OrderNumber:      order.OrderNumber,
			TrackingStatus:   string(order.TrackingStatus),
			AlreadyCancelled: order.IsCancelled,
		}
	}

	msg, err := m.gw.CancelOrder(ctx, order.OrderNumber, reason)
	if err != nil {
		return "", err
	}

	m.logger.Info("Order cancelled",
		zap.String("order_number", order.OrderNumber),
		zap.String("reason", reason),
	)

	if err := m.Refresh(ctx); err != nil {
		return msg, err
	}
	return msg, nil
}
