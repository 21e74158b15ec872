// Package dispatch selects a handler by the dynamic type of a call's first
// argument.
//
//	area := dispatch.NewTable[float64](nil)
//	dispatch.Register(area, func(c Circle, _ construct.Args) (float64, error) { return math.Pi * c.R * c.R, nil })
//	dispatch.Register(area, func(s Square, _ construct.Args) (float64, error) { return s.Side * s.Side, nil })
//
//	v, err := area.Call(Square{Side: 2})      // 4
//	_, err = area.Call("nope")                // errors.Is(err, dispatch.ErrUnsupportedOperand)
package dispatch
