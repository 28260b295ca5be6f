package prediction

import (
	"errors"
	"fmt"
)

// ErrCertaintyOutOfRange is wrapped by every ValidationError raised for a
// certainty outside [0, 1].
var ErrCertaintyOutOfRange = errors.New("certainty out of range")

// ValidationError reports a field that failed validation at construction.
type ValidationError struct {
	Field string
	Value float64
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s values must be between 0 and 1 inclusive - received %v", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }
