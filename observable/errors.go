package observable

import "errors"

var (
	// ErrNotStruct is returned when the decorated type is not a struct.
	ErrNotStruct = errors.New("decorated type is not a struct")

	// ErrUnknownField is returned when a binding names a field the decorated
	// type does not declare as an observable.Field.
	ErrUnknownField = errors.New("unknown observable field")

	// ErrTypeMismatch is returned when a binding callback takes a different
	// type than the field holds.
	ErrTypeMismatch = errors.New("callback type does not match field type")
)

// FieldError reports a binding that cannot be installed.
type FieldError struct {
	Class string
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return "observable " + e.Class + "." + e.Field + ": " + e.Err.Error()
}

// Unwrap returns the sentinel error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
