package shared

import "errors"

// Error kinds shared by the record store, the records service and the gateway.
// Callers wrap them with context and test with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidInput    = errors.New("invalid input")
)
