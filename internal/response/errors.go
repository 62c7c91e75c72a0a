package response

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("response validation failed")

// ValidationError reports a rejected builder mutation. The builder is left
// exactly as it was before the call.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response: %s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
