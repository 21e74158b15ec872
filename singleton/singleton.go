package singleton

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/construct"
)

var _ construct.Constructor[any] = (*Singleton[any])(nil)

// State is the lifecycle state of a singleton.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "UNINITIALIZED"
	case Initialized:
		return "INITIALIZED"
	default:
		return "UNKNOWN"
	}
}

// Singleton restricts a constructor to at most one live instance.
//
// In lenient mode (the default) repeated construction returns the existing
// instance and ignores the new arguments; Reset and ForceNew replace it. In
// strict mode a second construction and any reset fail.
type Singleton[T any] struct {
	inner    construct.Constructor[T]
	strict   bool
	instance *T
	name     string
	logger   *zap.Logger
}

// Option configures a Singleton.
type Option func(*options)

type options struct {
	strict bool
	logger *zap.Logger
}

// WithStrict selects strict mode.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New wraps inner with singleton enforcement.
func New[T any](inner construct.Constructor[T], opts ...Option) *Singleton[T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	name := construct.NameOf(inner)
	return &Singleton[T]{
		inner:  inner,
		strict: o.strict,
		name:   name,
		logger: o.logger.With(zap.String("class", name), zap.Bool("strict", o.strict)),
	}
}

// Name returns the decorated class name.
func (s *Singleton[T]) Name() string {
	return s.name
}

// Strict reports whether the singleton is strict.
func (s *Singleton[T]) Strict() bool {
	return s.strict
}

// State reports whether an instance exists.
func (s *Singleton[T]) State() State {
	if s.instance == nil {
		return Uninitialized
	}
	return Initialized
}

// Construct builds the instance on first use. Later calls return it without
// running the initializer, or fail with ErrAlreadyConstructed when strict.
func (s *Singleton[T]) Construct(args ...any) (*T, error) {
	if s.instance != nil {
		if s.strict {
			return nil, s.fail("construct", ErrAlreadyConstructed)
		}
		s.logger.Debug("singleton reused, arguments ignored", zap.Int("ignored_args", len(args)))
		return s.instance, nil
	}

	return s.create(args)
}

// Instance returns the current instance.
func (s *Singleton[T]) Instance() (*T, error) {
	if s.instance == nil {
		return nil, s.fail("instance", ErrNotYetConstructed)
	}
	return s.instance, nil
}

// MustInstance is Instance for callers that know construction happened.
func (s *Singleton[T]) MustInstance() *T {
	obj, err := s.Instance()
	if err != nil {
		panic(err)
	}
	return obj
}

// Reset forgets the instance so the next Construct builds a new one. Holders
// of the old instance keep a valid object.
func (s *Singleton[T]) Reset() error {
	if s.strict {
		return s.fail("reset", ErrCannotReset)
	}
	s.instance = nil
	s.logger.Debug("singleton reset")
	return nil
}

// ForceNew resets and constructs with args, returning the fresh instance.
func (s *Singleton[T]) ForceNew(args ...any) (*T, error) {
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s.create(args)
}

// create leaves the singleton uninitialized when construction fails.
func (s *Singleton[T]) create(args []any) (*T, error) {
	obj, err := s.inner.Construct(args...)
	if err != nil {
		return nil, err
	}
	s.instance = obj
	s.logger.Debug("singleton constructed")
	return obj, nil
}

func (s *Singleton[T]) fail(op string, err error) error {
	return &Error{Class: s.name, Op: op, Err: err}
}
