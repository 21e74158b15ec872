package compose

// Builder wraps a method so that it returns its receiver, for fluent chains:
//
//	reset := compose.Builder((*Query).Reset)
//	q := reset(query)
func Builder[R any](method func(R)) func(R) R {
	return func(r R) R {
		method(r)
		return r
	}
}

// Builder1 is Builder for methods taking one argument.
func Builder1[R, A any](method func(R, A)) func(R, A) R {
	return func(r R, a A) R {
		method(r, a)
		return r
	}
}

// Builder2 is Builder for methods taking two arguments.
func Builder2[R, A, B any](method func(R, A, B)) func(R, A, B) R {
	return func(r R, a A, b B) R {
		method(r, a, b)
		return r
	}
}

// Discard adapts a method with a result into one Builder accepts; the
// result is dropped.
func Discard[R, A, X any](method func(R, A) X) func(R, A) {
	return func(r R, a A) {
		method(r, a)
	}
}
