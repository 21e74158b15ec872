package cached

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/cache"
)

// Option configures a Cached decorator.
type Option func(*options)

type options struct {
	config        cache.Config
	store         any
	keySerializer cache.KeySerializer
	disable       func() bool
	logger        *zap.Logger
}

func defaultOptions() options {
	return options{
		config:        cache.DefaultConfig(),
		keySerializer: cache.NewDefaultKeySerializer(),
		logger:        zap.NewNop(),
	}
}

// WithDisable installs a predicate evaluated on every cache hit. While it
// returns true, hits are rebuilt as if they were misses.
func WithDisable(predicate func() bool) Option {
	return func(o *options) {
		o.disable = predicate
	}
}

// WithPolicy selects the store lifetime policy.
func WithPolicy(policy cache.Policy) Option {
	return func(o *options) {
		o.config.Policy = policy
	}
}

// WithConfig replaces the whole store configuration.
func WithConfig(cfg cache.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithStore uses an existing store. Its element type must match the
// decorated class, e.g. a cache.InstanceStore[Widget] for a Cached[Widget].
func WithStore(store any) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithKeySerializer replaces the default key serializer.
func WithKeySerializer(serializer cache.KeySerializer) Option {
	return func(o *options) {
		if serializer != nil {
			o.keySerializer = serializer
		}
	}
}

// WithLogger sets the logger used for cache events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OptionError reports an option that cannot be applied to the decorated class.
type OptionError struct {
	Option  string
	Message string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return "cached: option " + e.Option + ": " + e.Message
}
