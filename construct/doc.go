// Package construct defines the construction interface shared by the
// lifecycle decorators.
//
// A Class pairs an allocator with an Initializer, mirroring the two halves of
// object construction: obtaining memory for a new T and bringing it into a
// valid state. Decorators such as cached.Cached, singleton.Singleton and
// observable.Observable wrap any Constructor and are Constructors themselves:
//
//	widgets := construct.NewClass(func(w *Widget, args construct.Args) error {
//		w.Name = construct.Arg(args, 0, "")
//		w.Debug = construct.Named(args, "debug", false)
//		return nil
//	})
//
//	w, err := widgets.Construct("gear", construct.Kw("debug", true))
//
// Call arguments are untyped. Values built with Kw become named arguments and
// everything else stays positional, see Split.
package construct
