package order

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/pkg/errors"
)

// StageDeletion captures the owner's display name for a pending delete.
// The returned confirmation is ephemeral; it gates exactly one delete
// call and is discarded when the dialog closes.
func (m *Manager) StageDeletion(orderNumber string) (domain.DeletionConfirmation, error) {
	order, err := m.Get(orderNumber)
	if err != nil {
		return domain.DeletionConfirmation{}, err
	}

	return domain.DeletionConfirmation{
		OrderNumber:       order.OrderNumber,
		ExpectedOwnerName: order.OwnerName,
	}, nil
}

// nameMatches compares the typed name against the expected owner name,
// trimmed and case-insensitive.
func nameMatches(typed, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(expected))
}

// ConfirmDelete authorizes and issues the destructive delete. A name
// mismatch rejects locally without touching the network. The delete call
// is addressed by the business order number, not the storage identifier.
// On success the order list is refetched so no stale entry survives; on
// failure the confirmation is left intact for one retry.
func (m *Manager) ConfirmDelete(ctx context.Context, conf domain.DeletionConfirmation) (string, error) {
	if !nameMatches(conf.TypedName, conf.ExpectedOwnerName) {
		return "", &errors.ErrValidation{
			Field:   "typedName",
			Message: "the entered name does not match the order owner's name",
		}
	}

	msg, err := m.gw.DeleteOrder(ctx, conf.OrderNumber)
	if err != nil {
		return "", err
	}

	m.logger.Info("Order deleted", zap.String("order_number", conf.OrderNumber))

	if err := m.Refresh(ctx); err != nil {
		return msg, err
	}
	return msg, nil
}
