package cached

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/cache"
	"github.com/goliatone/go-lifecycle/construct"
)

// Interface assertion to ensure Cached implements Constructor[T]
var _ construct.Constructor[any] = (*Cached[any])(nil)

// Cached decorates a constructor so that constructing twice with equal
// arguments returns the instance built the first time, without running the
// initializer again.
type Cached[T any] struct {
	inner         construct.Constructor[T]
	store         cache.InstanceStore[T]
	keySerializer cache.KeySerializer
	disable       func() bool
	namespace     string
	name          string
	logger        *zap.Logger
}

// New wraps inner with a construction cache. Without options the cache uses
// the weak policy, the default key serializer and no disable predicate.
func New[T any](inner construct.Constructor[T], opts ...Option) (*Cached[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := resolveStore[T](o)
	if err != nil {
		return nil, err
	}

	name := construct.NameOf(inner)
	return &Cached[T]{
		inner:         inner,
		store:         store,
		keySerializer: o.keySerializer,
		disable:       o.disable,
		namespace:     cache.Namespace(name),
		name:          name,
		logger:        o.logger.With(zap.String("class", name)),
	}, nil
}

// MustNew is New for wiring code where a bad option is a programming error.
func MustNew[T any](inner construct.Constructor[T], opts ...Option) *Cached[T] {
	c, err := New(inner, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func resolveStore[T any](o options) (cache.InstanceStore[T], error) {
	if o.store != nil {
		if store, ok := o.store.(cache.InstanceStore[T]); ok {
			return store, nil
		}
		return nil, &OptionError{Option: "WithStore", Message: "store element type does not match the decorated class"}
	}
	return cache.NewInstanceStore[T](o.config)
}

// Name returns the decorated class name.
func (c *Cached[T]) Name() string {
	return c.name
}

// Construct returns the cached instance for args, building and caching one on
// a miss. When the disable predicate reports true a fresh instance is built
// and replaces the cached one.
func (c *Cached[T]) Construct(args ...any) (*T, error) {
	call := construct.Split(args...)
	key := c.Key(call)

	if obj, ok := c.store.Get(key); ok {
		if !c.disabled() {
			c.logger.Debug("construction cache hit", zap.String("key", key))
			return obj, nil
		}
		c.logger.Debug("construction cache disabled, rebuilding", zap.String("key", key))
	} else {
		c.logger.Debug("construction cache miss", zap.String("key", key))
	}

	return c.build(key, call)
}

// ConstructUncached always builds a fresh instance. The cache is neither read
// nor written.
func (c *Cached[T]) ConstructUncached(args ...any) (*T, error) {
	c.logger.Debug("construction cache bypassed")
	return c.inner.Construct(args...)
}

// ClearCache drops every entry. Instances already handed out stay valid.
func (c *Cached[T]) ClearCache() {
	c.store.Clear()
	c.logger.Debug("construction cache cleared")
}

// Forget drops the entry for args, if any.
func (c *Cached[T]) Forget(args ...any) {
	c.store.Delete(c.Key(construct.Split(args...)))
}

// Len reports the number of live entries.
func (c *Cached[T]) Len() int {
	return c.store.Len()
}

// Key returns the store key for a construction call.
func (c *Cached[T]) Key(call construct.Args) string {
	return c.keySerializer.SerializeKey(c.namespace, call.Key()...)
}

func (c *Cached[T]) disabled() bool {
	return c.disable != nil && c.disable()
}

// build publishes the new instance before initializing it when inner exposes
// both phases, so an initializer that constructs the same key sees it. A
// failed initialization removes the entry again.
func (c *Cached[T]) build(key string, call construct.Args) (*T, error) {
	if phased, ok := c.inner.(construct.TwoPhase[T]); ok {
		obj := phased.Allocate()
		c.store.Set(key, obj)
		if err := phased.Initialize(obj, call); err != nil {
			c.store.Delete(key)
			return nil, err
		}
		return obj, nil
	}

	obj, err := c.inner.Construct(call.Values()...)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, obj)
	return obj, nil
}
