package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/domain"
	"github.com/swiftmart/storefront/internal/upstream"
	"github.com/swiftmart/storefront/pkg/errors"
)

// Ledger holds the cached cart snapshot and applies quantity mutations
// against the server-authoritative cart. Every successful mutation ends
// in a wholesale snapshot refresh, so the cache never diverges from
// server state beyond the in-flight window. Mutations for the same line
// are serialized; the trailing refetch makes the later one observe
// server truth.
type Ledger struct {
	gw     upstream.CartGateway
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot domain.CartSnapshot

	linesMu   sync.Mutex
	lineLocks map[string]*sync.Mutex
}

// NewLedger creates a new quantity ledger
func NewLedger(gw upstream.CartGateway, logger *zap.Logger) *Ledger {
	return &Ledger{
		gw:        gw,
		logger:    logger,
		lineLocks: make(map[string]*sync.Mutex),
	}
}

// Refresh replaces the cached snapshot with a fresh fetch
func (l *Ledger) Refresh(ctx context.Context) error {
	snapshot, err := l.gw.FetchCart(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.snapshot = snapshot
	l.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached cart
func (l *Ledger) Snapshot() domain.CartSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(domain.CartSnapshot, len(l.snapshot))
	copy(snapshot, l.snapshot)
	return snapshot
}

// AddProduct adds a product to the cart and refreshes the snapshot. A
// session lapse surfaces as *errors.ErrSessionExpired so the caller can
// redirect to re-authentication instead of showing an inline error.
func (l *Ledger) AddProduct(ctx context.Context, productID string) (string, error) {
	msg, err := l.gw.AddToCart(ctx, productID)
	if err != nil {
		return "", err
	}

	if err := l.Refresh(ctx); err != nil {
		return msg, err
	}
	return msg, nil
}

// Increment requests quantity+1 for an existing line and returns the
// refreshed quantity. On failure the cached quantity is left unchanged.
func (l *Ledger) Increment(ctx context.Context, lineID string) (int, error) {
	unlock := l.lockLine(lineID)
	defer unlock()

	line, ok := l.Snapshot().FindByLineID(lineID)
	if !ok {
		return 0, &errors.ErrNotFound{Resource: "cart line", ID: lineID}
	}

	if _, err := l.gw.UpdateCartLine(ctx, lineID, line.Quantity+1); err != nil {
		return 0, err
	}

	if err := l.Refresh(ctx); err != nil {
		return 0, err
	}

	refreshed, ok := l.Snapshot().FindByLineID(lineID)
	if !ok {
		// A concurrent removal won the race; server state stands.
		return 0, nil
	}
	return refreshed.Quantity, nil
}

// Decrement requests quantity-1 for a line. A line at quantity 1 is
// removed instead: quantity 0 is not a valid line state and a set-to-0
// update is never sent.
func (l *Ledger) Decrement(ctx context.Context, lineID string, currentQuantity int) error {
	if currentQuantity <= 1 {
		return l.Remove(ctx, lineID)
	}

	unlock := l.lockLine(lineID)
	defer unlock()

	if _, err := l.gw.UpdateCartLine(ctx, lineID, currentQuantity-1); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

// Remove deletes a line entirely. Removing an already-absent line is a
// success no-op, tolerating a race with a concurrent removal.
func (l *Ledger) Remove(ctx context.Context, lineID string) error {
	unlock := l.lockLine(lineID)
	defer unlock()

	if _, err := l.gw.DeleteCartLine(ctx, lineID); err != nil {
		if _, ok := err.(*errors.ErrNotFound); !ok {
			return err
		}
		l.logger.Debug("Cart line already removed", zap.String("line_id", lineID))
	}
	return l.Refresh(ctx)
}

// lockLine serializes in-flight mutations per line
func (l *Ledger) lockLine(lineID string) func() {
	l.linesMu.Lock()
	lock, ok := l.lineLocks[lineID]
	if !ok {
		lock = &sync.Mutex{}
		l.lineLocks[lineID] = lock
	}
	l.linesMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
