// Package cached provides the construction cache decorator.
//
// # Overview
//
// Cached wraps any construct.Constructor and replaces its construction path:
// constructing twice with equal arguments returns the instance built the first
// time, and the initializer is not run again.
//
// # Basic Usage
//
//	widgets := construct.NewClass(initWidget)
//	c, err := cached.New[Widget](widgets)
//
//	a, _ := c.Construct("gear", construct.Kw("debug", true))
//	b, _ := c.Construct("gear", construct.Kw("debug", true)) // same pointer as a
//
// The bare and parameterized shapes are the same call:
//
//	cached.New[Widget](widgets)
//	cached.New[Widget](widgets, cached.WithDisable(isTesting), cached.WithPolicy(cache.PolicyStrong))
//
// # Construction Path
//
//  1. Serialize the key from the class namespace, the positional arguments and
//     the named arguments sorted by name
//  2. On a hit (and while the disable predicate reports false) return the stored instance
//  3. On a miss allocate, store, then initialize the new instance and return it
//
// When the wrapped constructor exposes allocation and initialization
// separately (construct.TwoPhase, which construct.Class does) the initializer
// runs bound to the stored instance. Otherwise the wrapped constructor runs as a
// whole and its result is stored. A failing initializer removes the entry and
// its error is returned unchanged.
//
// # Additional Operations
//
//   - ClearCache drops every entry; instances already handed out stay valid
//   - ConstructUncached builds a fresh instance without reading or writing the cache
//   - Forget drops a single entry
//
// # Lifetime Policies
//
// The store policy is chosen per decorator, see the cache package. The weak
// policy is the default: an entry disappears once nothing outside the cache
// references its instance.
//
// # Stacking
//
// Cached is itself a Constructor and can wrap, or be wrapped by, the other
// decorators. Wrapping a lenient singleton.Singleton caches every key to the
// one singleton instance; wrapping Cached with a singleton ignores arguments
// after the first call. Order is the caller's responsibility.
//
// # Concurrency
//
// The hit check and the insertion are separate steps. Concurrent construction
// of the same key may build two instances; serialize calls externally if that
// matters.
package cached
