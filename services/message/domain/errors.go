package domain

import "errors"

// Sentinel errors for the message domain.
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidMessage  = errors.New("invalid message")
)
