package types

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any store write.
	ErrValidation = errors.New("validation failed")
	// ErrAuth marks failures reported by the session provider.
	ErrAuth = errors.New("authentication failed")
	// ErrUnauthenticated is returned when an operation needs a session and there is none.
	ErrUnauthenticated = fmt.Errorf("%w: not signed in", ErrAuth)
	ErrNotFound        = errors.New("not found")
)
