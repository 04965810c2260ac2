package pocketmod

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions a conversion can hit.
var (
	ErrUnknownLayout = errors.New("pocketmod: unknown fold layout")
	ErrPageCount     = errors.New("pocketmod: unexpected page count")
	ErrBadPageSize   = errors.New("pocketmod: page has no usable size")
)

// OpError represents an error that occurred during a specific layout or
// imposition operation. It wraps an underlying error and includes the
// operation name for context.
type OpError struct {
	Op  string // operation name, e.g. "ResolveLayout", "FitRect"
	Err error  // underlying error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pocketmod.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pocketmod.%s: unknown error", e.Op)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// newOpError creates a new OpError wrapping the given error with
// operation context.
func newOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}
