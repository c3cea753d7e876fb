package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartLine represents one line of the shopping cart. The line identifier
// is assigned by the server; the client only caches it.
type CartLine struct {
	LineID    string
	ProductID string
	Quantity  int
}

// CartSnapshot is the full cart as last fetched from the server. It is
// replaced wholesale after every mutating call, never patched in place.
type CartSnapshot []CartLine

// FindByLineID returns the line with the given identifier
func (s CartSnapshot) FindByLineID(lineID string) (CartLine, bool) {
	for _, line := range s {
		if line.LineID == lineID {
			return line, true
		}
	}
	return CartLine{}, false
}

// ProductDetails is the denormalized product info carried on an order
type ProductDetails struct {
	Name   string
	Images []string
}

// DeliveryAddress is the shipping destination of an order
type DeliveryAddress struct {
	AddressLine string
	City        string
	State       string
	Pincode     string
}

// Order represents a placed order. ID is the storage key used to list
// and render orders; OrderNumber is the business-facing identifier that
// addresses the cancellation and deletion endpoints. The two must never
// be confused.
type Order struct {
	ID                 uuid.UUID
	OrderNumber        string
	TrackingStatus     TrackingStatus
	IsCancelled        bool
	CancellationReason *string
	CancellationDate   *time.Time
	PaymentStatus      string
	TotalAmount        float64
	ProductDetails     ProductDetails
	DeliveryAddress    DeliveryAddress
	OwnerName          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanCancel reports whether a cancellation request for this order may be
// submitted at all
func (o *Order) CanCancel() bool {
	return !o.IsCancelled && o.TrackingStatus.IsCancellable()
}

// CancellationRequest is the ephemeral payload collected from the user
// while the cancel dialog is open. It is never persisted.
type CancellationRequest struct {
	OrderNumber      string
	ReasonCode       CancellationReason
	CustomReasonText string
}

// DeletionConfirmation gates a single destructive delete call. TypedName
// must match ExpectedOwnerName before the call is issued.
type DeletionConfirmation struct {
	OrderNumber       string
	ExpectedOwnerName string
	TypedName         string
}
