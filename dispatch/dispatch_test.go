package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-lifecycle/construct"
	"github.com/goliatone/go-lifecycle/dispatch"
)

type circle struct{ R float64 }
type square struct{ Side float64 }

func shapes() *dispatch.Table[float64] {
	table := dispatch.NewTable[float64](nil)
	dispatch.Register(table, func(c circle, _ construct.Args) (float64, error) {
		return 3 * c.R * c.R, nil
	})
	dispatch.Register(table, func(s square, args construct.Args) (float64, error) {
		scale := construct.Named(args, "scale", 1.0)
		return s.Side * s.Side * scale, nil
	})
	return table
}

func TestCallDispatchesOnFirstArgument(t *testing.T) {
	table := shapes()

	v, err := table.Call(circle{R: 2})
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	v, err = table.Call(square{Side: 3}, construct.Kw("scale", 2.0))
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)
}

func TestCallUnsupportedOperand(t *testing.T) {
	table := shapes()

	_, err := table.Call("triangle")
	assert.ErrorIs(t, err, dispatch.ErrUnsupportedOperand)

	var uerr *dispatch.UnsupportedOperandError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Type, "string")

	_, err = table.Call(&square{Side: 1})
	assert.ErrorIs(t, err, dispatch.ErrUnsupportedOperand, "pointer types are distinct tags")

	_, err = table.Call(nil)
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "nil", uerr.Type)
}

func TestCallWithoutOperand(t *testing.T) {
	table := shapes()

	_, err := table.Call()
	assert.ErrorIs(t, err, dispatch.ErrNoOperand)

	_, err = table.Call(construct.Kw("scale", 2.0))
	assert.ErrorIs(t, err, dispatch.ErrNoOperand)
}

func TestRegisterReplacesHandler(t *testing.T) {
	table := shapes()
	dispatch.Register(table, func(c circle, _ construct.Args) (float64, error) {
		return c.R, nil
	})

	v, err := table.Call(circle{R: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Len(t, table.Types(), 2)
}

func TestHas(t *testing.T) {
	table := shapes()
	assert.True(t, dispatch.Has[circle](table))
	assert.False(t, dispatch.Has[string](table))
}
