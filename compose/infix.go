package compose

// Infix turns a two-argument function into a left-then-right application:
//
//	add := compose.NewInfix(func(a, b int) int { return a + b })
//	add.Left(2).Right(3) // 5
//
// Left captures the first operand in a new Partial, so one Infix can be used
// from several places without the operands of one use leaking into another.
type Infix[A, B, R any] struct {
	fn func(A, B) R
}

// NewInfix wraps fn.
func NewInfix[A, B, R any](fn func(A, B) R) *Infix[A, B, R] {
	return &Infix[A, B, R]{fn: fn}
}

// Left captures the left operand.
func (i *Infix[A, B, R]) Left(a A) Partial[A, B, R] {
	return Partial[A, B, R]{fn: i.fn, left: a}
}

// Apply calls the wrapped function directly.
func (i *Infix[A, B, R]) Apply(a A, b B) R {
	return i.fn(a, b)
}

// Partial holds a captured left operand.
type Partial[A, B, R any] struct {
	fn   func(A, B) R
	left A
}

// Right supplies the right operand and calls the wrapped function.
func (p Partial[A, B, R]) Right(b B) R {
	return p.fn(p.left, b)
}
