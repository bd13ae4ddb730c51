package ir

import (
	"errors"
)

var (
	// ErrIndexOutOfBounds is wrapped by the panic value of IndexOrInsert
	// when an array index does not name an existing element.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrTypeMismatch is wrapped when a node cannot be indexed by the
	// kind of key given.
	ErrTypeMismatch = errors.New("type mismatch for key")
	// ErrSentinelMutation is wrapped when a write is attempted through
	// the shared null returned by At.
	ErrSentinelMutation = errors.New("write through shared null")

	ErrPath = errors.New("path error")
)
