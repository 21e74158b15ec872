package construct

import (
	"fmt"
	"reflect"

	"github.com/muir/reflectutils"
)

// Constructor builds instances of T. Every decorator in this module consumes
// and implements it, which is what makes them stackable.
type Constructor[T any] interface {
	Construct(args ...any) (*T, error)
}

// Namer is implemented by constructors that can name the type they build.
type Namer interface {
	Name() string
}

// Initializer runs on a freshly allocated instance.
type Initializer[T any] func(obj *T, args Args) error

// ConstructorFunc adapts a plain function into a Constructor.
type ConstructorFunc[T any] func(args ...any) (*T, error)

// Construct calls fn.
func (fn ConstructorFunc[T]) Construct(args ...any) (*T, error) {
	return fn(args...)
}

// Class is the undecorated construction path of T: allocation followed by
// initialization of the new object.
type Class[T any] struct {
	name  string
	init  Initializer[T]
	alloc func() *T
}

// ClassOption configures a Class.
type ClassOption[T any] func(*Class[T])

// WithAllocator replaces the default new(T) allocation. The allocator must
// return fresh heap memory: the default weak cache policy cannot track
// pointers to package-level variables.
func WithAllocator[T any](alloc func() *T) ClassOption[T] {
	return func(c *Class[T]) {
		if alloc != nil {
			c.alloc = alloc
		}
	}
}

// WithName overrides the reflected type name.
func WithName[T any](name string) ClassOption[T] {
	return func(c *Class[T]) {
		if name != "" {
			c.name = name
		}
	}
}

// NewClass creates the construction path for T. A nil initializer leaves
// instances zero valued.
func NewClass[T any](init Initializer[T], opts ...ClassOption[T]) *Class[T] {
	c := &Class[T]{
		name:  TypeName[T](),
		init:  init,
		alloc: func() *T { return new(T) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the class name used in logs, keys and errors.
func (c *Class[T]) Name() string {
	return c.name
}

// Allocate returns a new, uninitialized instance.
func (c *Class[T]) Allocate() *T {
	return c.alloc()
}

// Initialize runs the initializer bound to obj.
func (c *Class[T]) Initialize(obj *T, args Args) error {
	if c.init == nil {
		return nil
	}
	if err := c.init(obj, args); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}

// Construct allocates and initializes a new instance.
func (c *Class[T]) Construct(args ...any) (*T, error) {
	obj := c.Allocate()
	if err := c.Initialize(obj, Split(args...)); err != nil {
		return nil, err
	}
	return obj, nil
}

// TypeName returns the fully qualified name of T.
func TypeName[T any]() string {
	return reflectutils.TypeName(reflect.TypeOf((*T)(nil)).Elem())
}

// NameOf returns the name reported by c when it implements Namer, otherwise
// the reflected name of T.
func NameOf[T any](c Constructor[T]) string {
	if n, ok := c.(Namer); ok {
		return n.Name()
	}
	return TypeName[T]()
}

// TwoPhase is implemented by constructors that expose allocation and
// initialization separately. Decorators use it to publish an instance before
// its initializer runs.
type TwoPhase[T any] interface {
	Allocate() *T
	Initialize(obj *T, args Args) error
}
