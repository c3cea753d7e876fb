package order

import (
	"context"
	"sync"
	"time"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/pkg/errors"
)

type cancelCall struct {
	orderNumber string
	reason      string
}

type mockOrderGateway struct {
	mu sync.Mutex

	orders []domain.Order

	fetchErr  error
	cancelErr error
	deleteErr error

	cancelCalls []cancelCall
	deleteCalls []string
}

func (m *mockOrderGateway) FetchOrders(context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	orders := make([]domain.Order, len(m.orders))
	copy(orders, m.orders)
	return orders, nil
}

func (m *mockOrderGateway) CancelOrder(_ context.Context, orderNumber, reason string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelErr != nil {
		return "", m.cancelErr
	}
	m.cancelCalls = append(m.cancelCalls, cancelCall{orderNumber: orderNumber, reason: reason})
	for i := range m.orders {
		if m.orders[i].OrderNumber == orderNumber {
			now := time.Now()
			m.orders[i].IsCancelled = true
			m.orders[i].CancellationReason = &reason
			m.orders[i].CancellationDate = &now
			return "Order cancelled", nil
		}
	}
	return "", &errors.ErrNotFound{Resource: "order", ID: orderNumber}
}

func (m *mockOrderGateway) DeleteOrder(_ context.Context, orderNumber string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return "", m.deleteErr
	}
	m.deleteCalls = append(m.deleteCalls, orderNumber)
	for i, o := range m.orders {
		if o.OrderNumber == orderNumber {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return "Order deleted successfully", nil
		}
	}
	return "", &errors.ErrNotFound{Resource: "order", ID: orderNumber}
}
