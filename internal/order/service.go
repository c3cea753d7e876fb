package order

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/internal/upstream"
	"github.com/swiftmart/storefront/pkg/errors"
)

// Manager holds the cached order collection and applies guarded
// lifecycle transitions against the server-authoritative orders. The
// cache is replaced wholesale after every successful mutation; tracking
// and cancellation fields may have server-side effects the client never
// sees, so no local patching is done.
type Manager struct {
	gw     upstream.OrderGateway
	logger *zap.Logger

	mu     sync.RWMutex
	orders []domain.Order
}

// NewManager creates a new order manager
func NewManager(gw upstream.OrderGateway, logger *zap.Logger) *Manager {
	return &Manager{
		gw:     gw,
		logger: logger,
	}
}

// Refresh replaces the cached order collection with a fresh fetch
func (m *Manager) Refresh(ctx context.Context) error {
	orders, err := m.gw.FetchOrders(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.orders = orders
	m.mu.Unlock()
	return nil
}

// Orders returns a copy of the cached order collection
func (m *Manager) Orders() []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]domain.Order, len(m.orders))
	copy(orders, m.orders)
	return orders
}

// Get returns the cached order with the given business order number
func (m *Manager) Get(orderNumber string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return domain.Order{}, &errors.ErrNotFound{Resource: "order", ID: orderNumber}
}
