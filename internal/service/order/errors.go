package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidAddress        = errors.New("invalid delivery address")
	ErrConstraintViolation   = errors.New("order violates storage constraints")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPaymentNotEditable = errors.New("payment completed via gateway cannot be changed")
)
