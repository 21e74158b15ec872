package singleton

import "errors"

var (
	// ErrAlreadyConstructed is returned when a strict singleton is constructed
	// a second time.
	ErrAlreadyConstructed = errors.New("already constructed")

	// ErrNotYetConstructed is returned when the instance is requested before
	// the first successful construction.
	ErrNotYetConstructed = errors.New("not yet constructed")

	// ErrCannotReset is returned when a strict singleton is reset.
	ErrCannotReset = errors.New("cannot reset strict singleton")
)

// Error carries the class and operation that failed. It unwraps to one of
// the sentinel errors above.
type Error struct {
	Class string
	Op    string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "singleton " + e.Class + ": " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}
