package observable

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Binding pairs a field name with a callback run after each write.
type Binding struct {
	ID        uuid.UUID
	Field     string
	valueType reflect.Type
	notify    func(any) error
}

// Attach binds fn to the field named field. fn receives the new value.
func Attach[V any](field string, fn func(V)) Binding {
	return AttachE(field, func(v V) error {
		fn(v)
		return nil
	})
}

// AttachE is Attach for callbacks that can fail. A returned error reaches the
// caller of Field.Set.
func AttachE[V any](field string, fn func(V) error) Binding {
	return Binding{
		ID:        uuid.New(),
		Field:     field,
		valueType: reflect.TypeOf((*V)(nil)).Elem(),
		notify: func(v any) error {
			return fn(v.(V))
		},
	}
}

// hub holds the observers reachable from a set of bound fields. With
// ScopeInstance every instance gets its own hub; with ScopeClass all
// instances share one.
type hub struct {
	owner     any
	observers map[string][]Binding
	logger    *zap.Logger
}

func newHub(owner any, bindings []Binding, logger *zap.Logger) *hub {
	h := &hub{owner: owner, observers: map[string][]Binding{}, logger: logger}
	for _, b := range bindings {
		h.add(b)
	}
	return h
}

func (h *hub) add(b Binding) {
	h.observers[b.Field] = append(h.observers[b.Field], b)
}

func (h *hub) remove(id uuid.UUID) bool {
	for field, list := range h.observers {
		for i, b := range list {
			if b.ID != id {
				continue
			}
			h.observers[field] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (h *hub) notify(field string, v any) error {
	observers := h.observers[field]
	h.logger.Debug("observed field changed", zap.String("field", field), zap.Int("observers", len(observers)))

	var err error
	for _, b := range observers {
		err = multierr.Append(err, b.notify(v))
	}
	return err
}
