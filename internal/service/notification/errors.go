package notification

import "errors"

var (
	ErrUndefinedEvent   = errors.New("undefined order event")
	ErrComposeFailed    = errors.New("compose notification failed")
	ErrInvalidRecipient = errors.New("invalid notification recipient")
)
