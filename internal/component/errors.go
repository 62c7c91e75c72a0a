package component

import "fmt"

// ErrorKind classifies decode failures.
type ErrorKind string

const (
	KindMalformedPayload ErrorKind = "malformed_payload" // missing type tag or required field
	KindInvalidNesting   ErrorKind = "invalid_nesting"   // action row inside an action row
)

// Error is returned by the decoder. Field names the offending wire field when
// there is one.
type Error struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("component: %s: %s (field %q)", e.Kind, e.Msg, e.Field)
	}
	return fmt.Sprintf("component: %s: %s", e.Kind, e.Msg)
}

// Is matches any *Error of the same kind, so callers can use errors.Is with
// ErrMalformedPayload and ErrInvalidNesting.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMalformedPayload = &Error{Kind: KindMalformedPayload, Msg: "malformed payload"}
	ErrInvalidNesting   = &Error{Kind: KindInvalidNesting, Msg: "nested action rows are not supported"}
)

func malformed(field, msg string) *Error {
	return &Error{Kind: KindMalformedPayload, Field: field, Msg: msg}
}
