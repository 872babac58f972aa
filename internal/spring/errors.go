package spring

import (
	"errors"
	"fmt"
)

// Misuse of a spring or system is a programming error and panics with an
// error wrapping one of these values.
var (
	ErrNilSpring       = errors.New("spring is required")
	ErrNilListener     = errors.New("listener is required")
	ErrDuplicateSpring = errors.New("spring is already registered")
	ErrUnknownSpring   = errors.New("spring is not registered")
	ErrDestroyed       = errors.New("spring has been destroyed")
	ErrNilLooper       = errors.New("looper is required")
	ErrEmptyName       = errors.New("config name is required")
)

func misuse(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}
