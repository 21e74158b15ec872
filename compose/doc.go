// Package compose holds small function combinators: Attach, Prepend and
// Chain wrap a function with a second one, Builder makes methods return
// their receiver, and Infix splits a binary call into two steps.
//
// Arguments for the attached or prepended function are bound by closure:
//
//	logged := compose.Attach[int, int](func() { log.Println("done") })(addOne)
package compose
