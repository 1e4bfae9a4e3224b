package message

import "errors"

// Error definitions for message package.
var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrMalformedMessage = errors.New("malformed message")
	ErrMessageTooLarge  = errors.New("message too large")
)
