package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a violated precondition: a programmer error such as an
	// out-of-range index, an integer division by zero or a non-positive target length.
	ErrPrecondition = errors.New("precondition violated")
	// ErrUnsupportedType is returned when an id does not belong to any registry partition.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrShortBuffer is returned when a binary buffer ends before a complete value.
	ErrShortBuffer = errors.New("short buffer")
)

// PreconditionError describes which operation was called with invalid arguments.
// It is the value carried by the panic raised in Assert.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrPrecondition, e.Msg)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// Assert aborts the current operation when cond is false. Preconditions are not
// recoverable errors: callers have to prevent them, so a violation panics with
// a *PreconditionError after logging it.
func Assert(cond bool, op string, format string, args ...interface{}) {
	if cond {
		return
	}
	err := &PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)}
	LogError("%s", err)
	panic(err)
}
