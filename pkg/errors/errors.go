package errors

import "fmt"

// ErrNotFound indicates the referenced resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrValidation indicates a guard rejected the action before any call was made
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrCancellationNotAllowed indicates the order is not in a cancellable state
type ErrCancellationNotAllowed struct {
	OrderNumber      string
	TrackingStatus   string
	AlreadyCancelled bool
}

func (e *ErrCancellationNotAllowed) Error() string {
	if e.AlreadyCancelled {
		return fmt.Sprintf("order %s is already cancelled", e.OrderNumber)
	}
	return fmt.Sprintf("order %s cannot be cancelled in status %s", e.OrderNumber, e.TrackingStatus)
}

// ErrSessionExpired indicates the storefront session lapsed and the user
// must re-authenticate before retrying
type ErrSessionExpired struct{}

func (e *ErrSessionExpired) Error() string {
	return "session expired, re-authentication required"
}

// ErrRemote indicates the storefront API call was made and failed. The
// message is opaque display text from the server, never parsed.
type ErrRemote struct {
	Op      string
	Status  int
	Message string
}

func (e *ErrRemote) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed: status %d", e.Op, e.Status)
}
