package tag

import (
	"errors"
	"fmt"
)

var (
	ErrTargetMustBePointer = errors.New("tag: target must be a non-nil pointer to a struct")
	ErrUnsupportedType     = errors.New("tag: unsupported type")
	ErrMaxDepthExceeded    = errors.New("tag: max recursion depth exceeded")
)

// FieldError reports a default value that could not be applied
type FieldError struct {
	Path  string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("tag: field %s: default %q: %v", e.Path, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
