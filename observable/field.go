package observable

import (
	"reflect"

	"go.uber.org/multierr"
)

// Field is an observable value embedded in a struct. Reads and writes go
// through its accessors; once the owning instance is bound by an Observable,
// every Set notifies the observers registered for the field's name. Stacked
// Observables each add their own observers; none replaces another's.
//
// The zero value is an unset, unobserved field.
type Field[V any] struct {
	value V
	set   bool
	name  string
	hubs  []*hub
}

// Value returns a field that already holds v. Useful in composite literals
// inside initializers.
func Value[V any](v V) Field[V] {
	return Field[V]{value: v, set: true}
}

// Get returns the stored value, or the zero value after Delete.
func (f *Field[V]) Get() V {
	return f.value
}

// Lookup returns the stored value and whether one is present.
func (f *Field[V]) Lookup() (V, bool) {
	return f.value, f.set
}

// Set stores v and then calls every observer with it. Observers of the
// innermost decorator run first, each decorator's in registration order. The
// value stays stored even when observers fail; their errors are returned
// combined.
func (f *Field[V]) Set(v V) error {
	f.value = v
	f.set = true

	var err error
	for _, h := range f.hubs {
		err = multierr.Append(err, h.notify(f.name, v))
	}
	return err
}

// Delete removes the stored value. Observers are not called.
func (f *Field[V]) Delete() {
	var zero V
	f.value = zero
	f.set = false
}

// Observed reports whether the field is bound to an Observable.
func (f *Field[V]) Observed() bool {
	return len(f.hubs) > 0
}

// Name returns the name the field was bound under, empty while unbound.
func (f *Field[V]) Name() string {
	return f.name
}

func (f *Field[V]) bind(name string, h *hub) {
	f.name = name
	f.hubs = append(f.hubs, h)
}

// boundBy reports whether a hub of owner is already attached.
func (f *Field[V]) boundBy(owner any) bool {
	for _, h := range f.hubs {
		if h.owner == owner {
			return true
		}
	}
	return false
}

func (f *Field[V]) valueType() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// binder is implemented by *Field[V] for every V.
type binder interface {
	bind(name string, h *hub)
	boundBy(owner any) bool
	valueType() reflect.Type
}

var binderType = reflect.TypeOf((*binder)(nil)).Elem()
