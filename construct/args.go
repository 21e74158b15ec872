package construct

import (
	"sort"
)

// NamedArg is a keyword argument passed to a constructor.
type NamedArg struct {
	Name  string
	Value any
}

// Kw builds a named argument. Values of this type are pulled out of the
// positional list by Split.
func Kw(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// Args holds the arguments of a single construction call.
type Args struct {
	Positional []any
	Named      []NamedArg
}

// Split partitions raw call arguments into positional and named arguments.
// Positional order is preserved. A name given twice keeps the last value at the
// position of its first occurrence.
func Split(args ...any) Args {
	var out Args
	seen := map[string]int{}
	for _, arg := range args {
		named, ok := arg.(NamedArg)
		if !ok {
			out.Positional = append(out.Positional, arg)
			continue
		}
		if idx, dup := seen[named.Name]; dup {
			out.Named[idx].Value = named.Value
			continue
		}
		seen[named.Name] = len(out.Named)
		out.Named = append(out.Named, named)
	}
	return out
}

// At returns the positional argument at index i.
func (a Args) At(i int) (any, bool) {
	if i < 0 || i >= len(a.Positional) {
		return nil, false
	}
	return a.Positional[i], true
}

// Lookup returns the named argument value for name.
func (a Args) Lookup(name string) (any, bool) {
	for _, n := range a.Named {
		if n.Name == name {
			return n.Value, true
		}
	}
	return nil, false
}

// Len reports the total number of arguments.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Named)
}

// Key returns the positional values followed by the named pairs sorted by name,
// so keyword order never changes the identity of a call.
func (a Args) Key() []any {
	key := make([]any, 0, a.Len())
	key = append(key, a.Positional...)

	named := append([]NamedArg(nil), a.Named...)
	sort.SliceStable(named, func(i, j int) bool {
		return named[i].Name < named[j].Name
	})
	for _, n := range named {
		key = append(key, n)
	}
	return key
}

// Values flattens the arguments back into a raw call list.
func (a Args) Values() []any {
	out := make([]any, 0, a.Len())
	out = append(out, a.Positional...)
	for _, n := range a.Named {
		out = append(out, n)
	}
	return out
}

// Arg extracts a typed positional argument, falling back to def when the index
// is out of range or holds another type.
func Arg[V any](a Args, i int, def V) V {
	raw, ok := a.At(i)
	if !ok {
		return def
	}
	v, ok := raw.(V)
	if !ok {
		return def
	}
	return v
}

// Named extracts a typed named argument, falling back to def.
func Named[V any](a Args, name string, def V) V {
	raw, ok := a.Lookup(name)
	if !ok {
		return def
	}
	v, ok := raw.(V)
	if !ok {
		return def
	}
	return v
}
