package cached

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-lifecycle/cache"
	"github.com/goliatone/go-lifecycle/construct"
	"github.com/goliatone/go-lifecycle/internal/cacheinfra"
	"github.com/goliatone/go-lifecycle/pkg/testsupport"
)

type widget struct {
	Name  string
	Size  int
	Debug bool
}

var errNameRequired = errors.New("name required")

func widgetClass(calls *testsupport.Counter) *construct.Class[widget] {
	return construct.NewClass(func(w *widget, args construct.Args) error {
		calls.Inc()
		w.Name = construct.Arg(args, 0, "")
		w.Size = construct.Arg(args, 1, 0)
		w.Debug = construct.Named(args, "debug", false)
		if w.Name == "" {
			return errNameRequired
		}
		return nil
	})
}

func boundedConfig() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Policy = cache.PolicyBounded
	cfg.TTL = time.Hour
	return cfg
}

func policies() map[string]Option {
	return map[string]Option{
		"weak":    WithPolicy(cache.PolicyWeak),
		"strong":  WithPolicy(cache.PolicyStrong),
		"bounded": WithConfig(boundedConfig()),
	}
}

func TestCached_SameArgsReturnSameInstance(t *testing.T) {
	for name, policy := range policies() {
		t.Run(name, func(t *testing.T) {
			var calls testsupport.Counter
			c, err := New[widget](widgetClass(&calls), policy)
			require.NoError(t, err)

			first, err := c.Construct("gear", 3)
			require.NoError(t, err)
			second, err := c.Construct("gear", 3)
			require.NoError(t, err)

			assert.Same(t, first, second)
			calls.AssertCount(t, 1)
			assert.Equal(t, "gear", second.Name)
			assert.Equal(t, 3, second.Size)
		})
	}
}

func TestCached_DifferentArgsReturnDifferentInstances(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls))

	a, err := c.Construct("gear", 3)
	require.NoError(t, err)
	b, err := c.Construct("gear", 4)
	require.NoError(t, err)
	d, err := c.Construct("gear", 3, construct.Kw("debug", true))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.NotSame(t, a, d)
	assert.True(t, d.Debug)
	calls.AssertCount(t, 3)
}

type holder struct {
	V any
}

func holderClass(calls *testsupport.Counter) *construct.Class[holder] {
	return construct.NewClass(func(h *holder, args construct.Args) error {
		calls.Inc()
		if v, ok := args.At(0); ok {
			h.V = v
			return nil
		}
		h.V, _ = args.Lookup("a")
		return nil
	})
}

func TestCached_ArgumentTypesKeepEntriesApart(t *testing.T) {
	first, second := 7, 7

	tests := []struct {
		name  string
		left  []any
		right []any
	}{
		{name: "string and int", left: []any{"1"}, right: []any{1}},
		{name: "int and float", left: []any{1}, right: []any{1.0}},
		{name: "positional string and named", left: []any{"a=1"}, right: []any{construct.Kw("a", 1)}},
		{name: "distinct pointers to equal values", left: []any{&first}, right: []any{&second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls testsupport.Counter
			c := MustNew[holder](holderClass(&calls), WithPolicy(cache.PolicyStrong))

			left, err := c.Construct(tt.left...)
			require.NoError(t, err)
			right, err := c.Construct(tt.right...)
			require.NoError(t, err)

			assert.NotSame(t, left, right)
			assert.IsType(t, tt.left[0], left.V)
			calls.AssertCount(t, 2)
			assert.Equal(t, 2, c.Len())
		})
	}

	t.Run("same pointer hits", func(t *testing.T) {
		var calls testsupport.Counter
		c := MustNew[holder](holderClass(&calls), WithPolicy(cache.PolicyStrong))

		a, err := c.Construct(&first)
		require.NoError(t, err)
		b, err := c.Construct(&first)
		require.NoError(t, err)

		assert.Same(t, a, b)
		calls.AssertCount(t, 1)
	})
}

type marker struct{}

func TestCached_ZeroSizeClass(t *testing.T) {
	for name, policy := range policies() {
		t.Run(name, func(t *testing.T) {
			var calls testsupport.Counter
			markers := construct.NewClass(func(*marker, construct.Args) error {
				calls.Inc()
				return nil
			})
			c := MustNew[marker](markers, policy)

			a, err := c.Construct("x")
			require.NoError(t, err)
			b, err := c.Construct("x")
			require.NoError(t, err)
			_, err = c.Construct("y")
			require.NoError(t, err)

			assert.Same(t, a, b)
			calls.AssertCount(t, 2)
			assert.Equal(t, 2, c.Len())

			c.ClearCache()
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestCached_NamedArgumentOrderDoesNotMatter(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyStrong))

	a, err := c.Construct("gear", construct.Kw("debug", true), construct.Kw("color", "red"))
	require.NoError(t, err)
	b, err := c.Construct("gear", construct.Kw("color", "red"), construct.Kw("debug", true))
	require.NoError(t, err)

	assert.Same(t, a, b)
	calls.AssertCount(t, 1)
}

func TestCached_ClearCache(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyStrong))

	before, err := c.Construct("gear", 1)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	c.ClearCache()
	assert.Equal(t, 0, c.Len())

	after, err := c.Construct("gear", 1)
	require.NoError(t, err)

	assert.NotSame(t, before, after)
	assert.Equal(t, "gear", before.Name, "cleared instances stay valid")
	assert.Equal(t, 1, before.Size)
	calls.AssertCount(t, 2)
}

func TestCached_ConstructUncached(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyStrong))

	cachedObj, err := c.Construct("gear")
	require.NoError(t, err)

	fresh, err := c.ConstructUncached("gear")
	require.NoError(t, err)
	other, err := c.ConstructUncached("bolt")
	require.NoError(t, err)

	assert.NotSame(t, cachedObj, fresh)
	assert.Equal(t, 1, c.Len(), "uncached construction must not populate the cache")

	again, err := c.Construct("gear")
	require.NoError(t, err)
	assert.Same(t, cachedObj, again)
	assert.Equal(t, "bolt", other.Name)
	calls.AssertCount(t, 3)
}

func TestCached_DisablePredicate(t *testing.T) {
	var calls testsupport.Counter
	disabled := false
	c := MustNew[widget](widgetClass(&calls),
		WithPolicy(cache.PolicyStrong),
		WithDisable(func() bool { return disabled }),
	)

	first, err := c.Construct("gear")
	require.NoError(t, err)

	disabled = true
	second, err := c.Construct("gear")
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	disabled = false
	third, err := c.Construct("gear")
	require.NoError(t, err)
	assert.Same(t, second, third, "the rebuilt instance replaces the cached one")
	calls.AssertCount(t, 2)
}

func TestCached_InitializerFailureIsNotCached(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyStrong))

	obj, err := c.Construct("")
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, errNameRequired)
	assert.Equal(t, 0, c.Len())

	_, err = c.Construct("")
	assert.ErrorIs(t, err, errNameRequired)
	calls.AssertCount(t, 2)
}

func TestCached_OpaqueConstructor(t *testing.T) {
	var calls testsupport.Counter
	inner := construct.ConstructorFunc[widget](func(args ...any) (*widget, error) {
		calls.Inc()
		call := construct.Split(args...)
		return &widget{Name: construct.Arg(call, 0, ""), Debug: construct.Named(call, "debug", false)}, nil
	})
	c := MustNew[widget](inner, WithPolicy(cache.PolicyStrong))

	a, err := c.Construct("gear", construct.Kw("debug", true))
	require.NoError(t, err)
	b, err := c.Construct("gear", construct.Kw("debug", true))
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.True(t, a.Debug, "named arguments reach opaque constructors")
	calls.AssertCount(t, 1)
}

func TestCached_Forget(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyStrong))

	a, err := c.Construct("gear")
	require.NoError(t, err)
	_, err = c.Construct("bolt")
	require.NoError(t, err)

	c.Forget("gear")
	assert.Equal(t, 1, c.Len())

	b, err := c.Construct("gear")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

//go:noinline
func constructAndDrop(t *testing.T, c *Cached[widget]) {
	_, err := c.Construct("ephemeral")
	require.NoError(t, err)
}

func TestCached_WeakEntriesFollowInstanceLifetime(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls), WithPolicy(cache.PolicyWeak))

	held, err := c.Construct("held")
	require.NoError(t, err)
	constructAndDrop(t, c)

	require.Eventually(t, func() bool {
		runtime.GC()
		return c.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	again, err := c.Construct("held")
	require.NoError(t, err)
	assert.Same(t, held, again)

	_, err = c.Construct("ephemeral")
	require.NoError(t, err)
	calls.AssertCount(t, 3)
}

func TestCached_SharedStore(t *testing.T) {
	store, err := cache.NewInstanceStore[widget](cache.Config{Policy: cache.PolicyStrong})
	require.NoError(t, err)

	var calls testsupport.Counter
	class := widgetClass(&calls)
	a := MustNew[widget](class, WithStore(store))
	b := MustNew[widget](class, WithStore(store))

	first, err := a.Construct("gear")
	require.NoError(t, err)
	second, err := b.Construct("gear")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestCached_StoreTypeMismatch(t *testing.T) {
	store, err := cache.NewInstanceStore[string](cache.Config{Policy: cache.PolicyStrong})
	require.NoError(t, err)

	var calls testsupport.Counter
	_, err = New[widget](widgetClass(&calls), WithStore(store))

	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "WithStore", optErr.Option)
}

func TestCached_InvalidConfig(t *testing.T) {
	var calls testsupport.Counter
	cfg := boundedConfig()
	cfg.Capacity = 0

	_, err := New[widget](widgetClass(&calls), WithConfig(cfg))

	var cfgErr *cacheinfra.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Capacity", cfgErr.Field)
}

func TestCached_MustNewPanicsOnBadOption(t *testing.T) {
	var calls testsupport.Counter
	assert.Panics(t, func() {
		MustNew[widget](widgetClass(&calls), WithPolicy("forever"))
	})
}

func TestCached_KeyIncludesNamespace(t *testing.T) {
	var calls testsupport.Counter
	c := MustNew[widget](widgetClass(&calls))

	key := c.Key(construct.Split("gear", construct.Kw("debug", true)))
	assert.Equal(t, "cached_widget"+cache.KeySeparator+`string:"gear"`+cache.KeySeparator+`kw:"debug"=bool:true`, key)
	assert.Contains(t, c.Name(), "widget")
}
