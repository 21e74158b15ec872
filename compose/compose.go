package compose

// Decorator wraps a single-argument function.
type Decorator[A, R any] func(func(A) R) func(A) R

// Attach returns a decorator that runs after once the decorated function has
// returned. The decorated function's result is returned unchanged.
func Attach[A, R any](after func()) Decorator[A, R] {
	return func(f func(A) R) func(A) R {
		return func(a A) R {
			res := f(a)
			after()
			return res
		}
	}
}

// Prepend returns a decorator that runs before ahead of the decorated
// function and returns the decorated function's result.
func Prepend[A, R any](before func()) Decorator[A, R] {
	return func(f func(A) R) func(A) R {
		return func(a A) R {
			before()
			return f(a)
		}
	}
}

// Chain returns a decorator that feeds the decorated function's result into
// next and returns what next returns.
func Chain[A, B, C any](next func(B) C) func(func(A) B) func(A) C {
	return func(f func(A) B) func(A) C {
		return func(a A) C {
			return next(f(a))
		}
	}
}

// Apply decorates f with each decorator in order; the first decorator ends
// up innermost.
func Apply[A, R any](f func(A) R, decorators ...Decorator[A, R]) func(A) R {
	for _, d := range decorators {
		f = d(f)
	}
	return f
}
