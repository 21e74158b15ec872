package dispatch

import (
	"errors"
	"reflect"
	"sort"

	"github.com/muir/reflectutils"
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/construct"
)

var (
	// ErrUnsupportedOperand is returned when no handler is registered for the
	// dynamic type of the first argument.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrNoOperand is returned when Call receives no arguments.
	ErrNoOperand = errors.New("no operand to dispatch on")
)

// UnsupportedOperandError names the type that had no handler.
type UnsupportedOperandError struct {
	Type string
}

// Error implements the error interface.
func (e *UnsupportedOperandError) Error() string {
	return "dispatch: " + ErrUnsupportedOperand.Error() + " of type " + e.Type
}

// Unwrap returns ErrUnsupportedOperand.
func (e *UnsupportedOperandError) Unwrap() error {
	return ErrUnsupportedOperand
}

// Handler receives the full argument list of a call. args.Positional[0] is
// the operand that selected it.
type Handler[R any] func(args construct.Args) (R, error)

// Table maps the dynamic type of a call's first argument to a handler.
// Registration replaces any handler already bound to the same type. Lookups
// match exact types only; interface types are never matched.
type Table[R any] struct {
	handlers map[reflect.Type]Handler[R]
	logger   *zap.Logger
}

// NewTable creates an empty table. A nil logger disables logging.
func NewTable[R any](logger *zap.Logger) *Table[R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table[R]{handlers: map[reflect.Type]Handler[R]{}, logger: logger}
}

// Register binds fn to operands of type T.
func Register[T, R any](t *Table[R], fn func(operand T, args construct.Args) (R, error)) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	t.handlers[typ] = func(args construct.Args) (R, error) {
		return fn(args.Positional[0].(T), args)
	}
	t.logger.Debug("dispatch handler registered", zap.String("type", reflectutils.TypeName(typ)))
}

// Call selects the handler for the type of the first positional argument.
func (t *Table[R]) Call(args ...any) (R, error) {
	var zero R

	call := construct.Split(args...)
	if len(call.Positional) == 0 {
		return zero, ErrNoOperand
	}

	operand := call.Positional[0]
	if operand == nil {
		return zero, &UnsupportedOperandError{Type: "nil"}
	}

	typ := reflect.TypeOf(operand)
	handler, ok := t.handlers[typ]
	if !ok {
		return zero, &UnsupportedOperandError{Type: reflectutils.TypeName(typ)}
	}
	return handler(call)
}

// Has reports whether a handler is registered for T.
func Has[T, R any](t *Table[R]) bool {
	_, ok := t.handlers[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Types lists the registered operand type names, sorted.
func (t *Table[R]) Types() []string {
	names := make([]string, 0, len(t.handlers))
	for typ := range t.handlers {
		names = append(names, reflectutils.TypeName(typ))
	}
	sort.Strings(names)
	return names
}
