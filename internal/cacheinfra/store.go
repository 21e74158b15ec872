package cacheinfra

// Store is the method set every backend implements. It matches
// cache.InstanceStore without importing it.
type Store[T any] interface {
	Get(key string) (*T, bool)
	Set(key string, obj *T)
	Delete(key string)
	Clear()
	Len() int
}

// NewStore builds the backend selected by cfg.Policy.
func NewStore[T any](cfg Config) (Store[T], error) {
	if cfg.Policy == "" {
		cfg.Policy = PolicyWeak
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Policy {
	case PolicyStrong:
		return NewStrongStore[T](), nil
	case PolicyBounded:
		store, err := NewSturdycStore[T](cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return NewWeakStore[T](), nil
	}
}
