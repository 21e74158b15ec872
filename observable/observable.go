package observable

import (
	"reflect"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-lifecycle/construct"
)

var _ construct.Constructor[any] = (*Observable[any])(nil)

// TagName is the struct tag that renames an observable field. A tag of "-"
// hides the field from bindings.
const TagName = "observe"

// Scope decides which instances share observers.
type Scope int

const (
	// ScopeInstance gives every constructed instance its own observers, copied
	// from the decorator's bindings at construction time.
	ScopeInstance Scope = iota

	// ScopeClass makes every instance the decorator constructs or binds share
	// one live observer table; Attach and Detach affect all of them.
	ScopeClass
)

func (s Scope) String() string {
	if s == ScopeClass {
		return "class"
	}
	return "instance"
}

// Option configures an Observable.
type Option func(*options)

type options struct {
	bindings []Binding
	scope    Scope
	logger   *zap.Logger
}

// WithBindings registers (field, callback) pairs.
func WithBindings(bindings ...Binding) Option {
	return func(o *options) {
		o.bindings = append(o.bindings, bindings...)
	}
}

// WithScope selects instance or class scope. ScopeInstance is the default.
func WithScope(scope Scope) Option {
	return func(o *options) {
		o.scope = scope
	}
}

// WithLogger sets the logger used for install and notify events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Observable decorates a constructor so that the observable fields of each
// constructed instance notify the registered callbacks on write.
type Observable[T any] struct {
	inner     construct.Constructor[T]
	scope     Scope
	bindings  []Binding
	shared    *hub
	fields    map[string][]int
	installed bool
	name      string
	logger    *zap.Logger
}

// New wraps inner. Field lookup happens on the first Construct or Bind.
func New[T any](inner construct.Constructor[T], opts ...Option) *Observable[T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	name := construct.NameOf(inner)
	obs := &Observable[T]{
		inner:    inner,
		scope:    o.scope,
		bindings: append([]Binding(nil), o.bindings...),
		name:     name,
		logger:   o.logger.With(zap.String("class", name), zap.Stringer("scope", o.scope)),
	}
	if obs.scope == ScopeClass {
		obs.shared = newHub(obs, obs.bindings, obs.logger)
	}
	return obs
}

// Name returns the decorated class name.
func (o *Observable[T]) Name() string {
	return o.name
}

// Scope returns the configured scope.
func (o *Observable[T]) Scope() Scope {
	return o.scope
}

// Bindings returns a copy of the decorator's bindings.
func (o *Observable[T]) Bindings() []Binding {
	return append([]Binding(nil), o.bindings...)
}

// Fields lists the observable field names of T. It returns nil until the
// fields have been installed.
func (o *Observable[T]) Fields() []string {
	names := make([]string, 0, len(o.fields))
	for name := range o.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Construct builds an instance with the wrapped constructor and binds its
// observable fields. Writes made by the initializer happen before binding and
// do not notify.
func (o *Observable[T]) Construct(args ...any) (*T, error) {
	// bindings are checked before anything is built, so an inner cache never
	// keeps an instance that could not be bound
	if err := o.install(); err != nil {
		return nil, err
	}

	obj, err := o.inner.Construct(args...)
	if err != nil {
		return nil, err
	}
	if err := o.Bind(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Bind attaches the decorator's observers to an instance built elsewhere.
// Fields already bound by this decorator are left alone, so binding twice
// (for example through a construction cache hit) keeps existing observers.
// Observers added by other decorators stay attached.
func (o *Observable[T]) Bind(obj *T) error {
	if err := o.install(); err != nil {
		return err
	}
	if obj == nil {
		return nil
	}

	h := o.shared
	if h == nil {
		h = newHub(o, o.bindings, o.logger)
	}

	v := reflect.ValueOf(obj).Elem()
	for name, index := range o.fields {
		field := v.FieldByIndex(index).Addr().Interface().(binder)
		if field.boundBy(o) {
			continue
		}
		field.bind(name, h)
	}
	return nil
}

// Attach registers more bindings. With ScopeClass they apply to every bound
// instance immediately; with ScopeInstance only to instances constructed
// afterwards.
func (o *Observable[T]) Attach(bindings ...Binding) error {
	if o.installed {
		for _, b := range bindings {
			if err := o.check(b); err != nil {
				return err
			}
		}
	}

	o.bindings = append(o.bindings, bindings...)
	if o.shared != nil {
		for _, b := range bindings {
			o.shared.add(b)
		}
	}
	return nil
}

// Detach removes the binding with id. It reports whether one was found.
func (o *Observable[T]) Detach(id uuid.UUID) bool {
	found := false
	for i, b := range o.bindings {
		if b.ID == id {
			o.bindings = append(o.bindings[:i:i], o.bindings[i+1:]...)
			found = true
			break
		}
	}
	if o.shared != nil {
		o.shared.remove(id)
	}
	return found
}

// install resolves the observable fields of T once and validates the
// bindings against them.
func (o *Observable[T]) install() error {
	if o.installed {
		return nil
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return &FieldError{Class: o.name, Field: "*", Err: ErrNotStruct}
	}

	fields := map[string][]int{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || !reflect.PointerTo(f.Type).Implements(binderType) {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields[name] = f.Index
	}
	o.fields = fields

	for _, b := range o.bindings {
		if err := o.check(b); err != nil {
			o.fields = nil
			return err
		}
	}

	o.installed = true
	o.logger.Debug("observable fields installed", zap.Strings("fields", o.Fields()))
	return nil
}

func (o *Observable[T]) check(b Binding) error {
	index, ok := o.fields[b.Field]
	if !ok {
		return &FieldError{Class: o.name, Field: b.Field, Err: ErrUnknownField}
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	fieldType := t.FieldByIndex(index).Type
	want := reflect.New(fieldType).Interface().(binder).valueType()
	if b.valueType != want {
		return &FieldError{Class: o.name, Field: b.Field, Err: ErrTypeMismatch}
	}
	return nil
}
