package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/pkg/errors"
)

type updateCall struct {
	lineID   string
	quantity int
}

type mockCartGateway struct {
	mu sync.Mutex

	cart domain.CartSnapshot

	fetchErr  error
	addErr    error
	updateErr error
	deleteErr error

	addCalls    []string
	updateCalls []updateCall
	deleteCalls []string
}

func (m *mockCartGateway) FetchCart(context.Context) (domain.CartSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	snapshot := make(domain.CartSnapshot, len(m.cart))
	copy(snapshot, m.cart)
	return snapshot, nil
}

func (m *mockCartGateway) AddToCart(_ context.Context, productID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return "", m.addErr
	}
	m.addCalls = append(m.addCalls, productID)
	m.cart = append(m.cart, domain.CartLine{LineID: "L-" + productID, ProductID: productID, Quantity: 1})
	return "Item added", nil
}

func (m *mockCartGateway) UpdateCartLine(_ context.Context, lineID string, quantity int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return "", m.updateErr
	}
	m.updateCalls = append(m.updateCalls, updateCall{lineID: lineID, quantity: quantity})
	for i := range m.cart {
		if m.cart[i].LineID == lineID {
			m.cart[i].Quantity = quantity
			return "Cart updated", nil
		}
	}
	return "", &errors.ErrNotFound{Resource: "cart line", ID: lineID}
}

func (m *mockCartGateway) DeleteCartLine(_ context.Context, lineID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return "", m.deleteErr
	}
	m.deleteCalls = append(m.deleteCalls, lineID)
	for i, line := range m.cart {
		if line.LineID == lineID {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
			return "Item removed", nil
		}
	}
	return "", &errors.ErrNotFound{Resource: "cart line", ID: lineID}
}

func newTestLedger(gw *mockCartGateway) *Ledger {
	return NewLedger(gw, zap.NewNop())
}

func TestDecrementAtQuantityOneRemovesLine(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 1},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	err := ledger.Decrement(context.Background(), "L1", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"L1"}, gw.deleteCalls)
	assert.Empty(t, gw.updateCalls, "a set-to-zero update must never be sent")
	assert.Empty(t, ledger.Snapshot())
}

func TestDecrementAboveOneSendsQuantityMinusOne(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P9", Quantity: 3},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	err := ledger.Decrement(context.Background(), "L1", 3)
	require.NoError(t, err)

	require.Len(t, gw.updateCalls, 1)
	assert.Equal(t, updateCall{lineID: "L1", quantity: 2}, gw.updateCalls[0])
	assert.Empty(t, gw.deleteCalls)

	line, ok := ledger.Snapshot().FindByLineID("L1")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestIncrementReturnsRefreshedQuantity(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 2},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	quantity, err := ledger.Increment(context.Background(), "L1")
	require.NoError(t, err)

	assert.Equal(t, 3, quantity)
	require.Len(t, gw.updateCalls, 1)
	assert.Equal(t, updateCall{lineID: "L1", quantity: 3}, gw.updateCalls[0])
}

func TestIncrementUnknownLineRejectedWithoutCall(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 2},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	_, err := ledger.Increment(context.Background(), "L404")
	require.Error(t, err)

	var notFound *errors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Empty(t, gw.updateCalls)
}

func TestIncrementFailureLeavesCacheUnchanged(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 2},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))
	before := ledger.Snapshot()

	gw.updateErr = &errors.ErrRemote{Op: "update cart line", Status: 500, Message: "boom"}

	_, err := ledger.Increment(context.Background(), "L1")
	require.Error(t, err)

	var remote *errors.ErrRemote
	assert.ErrorAs(t, err, &remote)
	assert.Equal(t, before, ledger.Snapshot())
}

func TestRemoveAbsentLineIsSuccessNoOp(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 2},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	err := ledger.Remove(context.Background(), "L-gone")
	require.NoError(t, err)

	// snapshot still matches what a fresh fetch returns
	fresh, fetchErr := gw.FetchCart(context.Background())
	require.NoError(t, fetchErr)
	assert.Equal(t, fresh, ledger.Snapshot())
}

func TestAddProductSessionLapseSurfacedForRedirect(t *testing.T) {
	gw := &mockCartGateway{addErr: &errors.ErrSessionExpired{}}
	ledger := newTestLedger(gw)

	_, err := ledger.AddProduct(context.Background(), "P1")
	require.Error(t, err)

	var expired *errors.ErrSessionExpired
	assert.ErrorAs(t, err, &expired)
	assert.Empty(t, gw.addCalls)
}

func TestCacheMatchesFreshFetchAfterMutation(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 2},
		{LineID: "L2", ProductID: "P2", Quantity: 5},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	_, err := ledger.Increment(context.Background(), "L2")
	require.NoError(t, err)

	fresh, fetchErr := gw.FetchCart(context.Background())
	require.NoError(t, fetchErr)
	assert.Equal(t, fresh, ledger.Snapshot())
}

func TestConcurrentMutationsOnOneLineSerialize(t *testing.T) {
	gw := &mockCartGateway{cart: domain.CartSnapshot{
		{LineID: "L1", ProductID: "P1", Quantity: 1},
	}}
	ledger := newTestLedger(gw)
	require.NoError(t, ledger.Refresh(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ledger.Increment(context.Background(), "L1")
		}()
	}
	wg.Wait()

	line, ok := ledger.Snapshot().FindByLineID("L1")
	require.True(t, ok)
	assert.Equal(t, 6, line.Quantity)
}
