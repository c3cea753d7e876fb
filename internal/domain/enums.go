package domain

// TrackingStatus represents the fulfillment stage of an order
type TrackingStatus string

const (
	TrackingStatusPlaced    TrackingStatus = "Placed"
	TrackingStatusPacked    TrackingStatus = "Packed"
	TrackingStatusShipped   TrackingStatus = "Shipped"
	TrackingStatusDelivered TrackingStatus = "Delivered"
)

// IsValid checks if the tracking status is valid
func (s TrackingStatus) IsValid() bool {
	switch s {
	case TrackingStatusPlaced,
		TrackingStatusPacked,
		TrackingStatusShipped,
		TrackingStatusDelivered:
		return true
	default:
		return false
	}
}

// IsCancellable reports whether an order in this status may still be
// cancelled. Once handed to the carrier the order is out of reach.
func (s TrackingStatus) IsCancellable() bool {
	switch s {
	case TrackingStatusPlaced, TrackingStatusPacked:
		return true
	default:
		return false
	}
}

// CancellationReason is one of the fixed reason choices offered in the
// cancel dialog. ReasonOther requires accompanying free text.
type CancellationReason string

const (
	ReasonChangedMind       CancellationReason = "Changed my mind"
	ReasonBetterAlternative CancellationReason = "Found a better alternative"
	ReasonPlacedByMistake   CancellationReason = "Order placed by mistake"
	ReasonOther             CancellationReason = "Other"
)

// IsValid checks if the reason code is one of the offered choices
func (r CancellationReason) IsValid() bool {
	switch r {
	case ReasonChangedMind, ReasonBetterAlternative, ReasonPlacedByMistake, ReasonOther:
		return true
	default:
		return false
	}
}
