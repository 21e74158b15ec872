package di

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/cache"
	"github.com/goliatone/go-lifecycle/cached"
	"github.com/goliatone/go-lifecycle/construct"
	"github.com/goliatone/go-lifecycle/observable"
	"github.com/goliatone/go-lifecycle/singleton"
)

// Container holds the components shared by every decorator it builds: a
// logger, a key serializer and the default store configuration.
type Container struct {
	logger        *zap.Logger
	keySerializer cache.KeySerializer
	config        cache.Config
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger handed to every decorator.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithKeySerializer replaces the default key serializer.
func WithKeySerializer(serializer cache.KeySerializer) Option {
	return func(c *Container) {
		if serializer != nil {
			c.keySerializer = serializer
		}
	}
}

// NewContainer creates a new DI container with the provided store
// configuration. The configuration is validated once here so decorators built
// from the container cannot fail on it.
func NewContainer(config cache.Config, opts ...Option) (*Container, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		logger:        zap.NewNop(),
		keySerializer: cache.NewDefaultKeySerializer(),
		config:        config,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewContainerWithDefaults creates a new DI container using default configuration.
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(cache.DefaultConfig(), opts...)
}

// Logger returns the shared logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// KeySerializer returns the shared key serializer.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the store configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}

// Cached wraps inner in a construction cache using the container's
// configuration, serializer and logger. Options passed here are applied last
// and win over the container defaults.
//
// Since Go methods cannot have type parameters, this is provided as a package-level function.
// Example: Cached[Widget](container, widgetClass)
func Cached[T any](c *Container, inner construct.Constructor[T], opts ...cached.Option) (*cached.Cached[T], error) {
	all := append([]cached.Option{
		cached.WithConfig(c.config),
		cached.WithKeySerializer(c.keySerializer),
		cached.WithLogger(c.logger.Named("cached")),
	}, opts...)
	return cached.New(inner, all...)
}

// Singleton wraps inner in a singleton decorator that logs through the container.
func Singleton[T any](c *Container, inner construct.Constructor[T], opts ...singleton.Option) *singleton.Singleton[T] {
	all := append([]singleton.Option{
		singleton.WithLogger(c.logger.Named("singleton")),
	}, opts...)
	return singleton.New(inner, all...)
}

// Observable wraps inner in an observable decorator that logs through the container.
func Observable[T any](c *Container, inner construct.Constructor[T], opts ...observable.Option) *observable.Observable[T] {
	all := append([]observable.Option{
		observable.WithLogger(c.logger.Named("observable")),
	}, opts...)
	return observable.New(inner, all...)
}
