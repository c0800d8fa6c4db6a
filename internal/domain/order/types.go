package order

import "bibliolights/internal/pkg/errs"

type Status string

const (
	StatusCreated          Status = "created"
	StatusAccepted         Status = "accepted"
	StatusAwaitingPayment  Status = "awaiting_payment"
	StatusPaymentConfirmed Status = "payment_confirmed"
	StatusShipped          Status = "shipped"
)

var (
	ErrInvalidStatus     = errs.Validation("unknown order status")
	ErrEmptyOrder        = errs.Validation("order must contain at least one item")
	ErrInvalidQuantity   = errs.Validation("item quantity must be positive")
	ErrNegativeUnitPrice = errs.Validation("item unit price cannot be negative")
	ErrMissingOwner      = errs.Validation("order requires an owner")
	ErrMissingEntry      = errs.Validation("item requires a catalog entry")
	ErrInvalidTracking   = errs.Validation("tracking url must be an absolute http(s) url")
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusAccepted, StatusAwaitingPayment, StatusPaymentConfirmed, StatusShipped:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
