// Package observable turns selected struct fields into observed values whose
// writes invoke registered callbacks.
//
// Declare the fields with the Field type and bind callbacks by field name.
// The name is the Go field name unless an `observe` tag renames it:
//
//	type Document struct {
//		Title observable.Field[string] `observe:"t"`
//		Draft observable.Field[bool]
//	}
//
//	docs := observable.New[Document](construct.NewClass(initDocument),
//		observable.WithBindings(observable.Attach("t", func(v string) { log.Println(v) })),
//	)
//	d, _ := docs.Construct("hello")
//	_ = d.Title.Set("world") // logs "world"
//
// Field stores its value in a private slot; Get reads it, Set writes it and
// then calls the observers synchronously, Delete clears it without notifying.
// A callback error is returned from Set after the value has been stored.
//
// # Scope
//
// Observation applies only to instances the decorator constructs or binds.
// With ScopeInstance (the default) each instance receives its own copy of the
// bindings present when it was built. With ScopeClass every bound instance
// shares one live table, so Attach and Detach reach instances built earlier.
// Instances created without the decorator are never observed implicitly; pass
// them to Bind to opt them in.
//
// # Installation
//
// The first Construct or Bind resolves the observable fields of the type and
// validates every binding. Unknown field names and callback type mismatches
// are reported as *FieldError at that point.
package observable
