package cache

// KeySerializer builds a cache key from a namespace + arbitrary args.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(namespace string, args ...any) string
}

// InstanceStore holds constructed instances by construction key.
// Implementations decide how long an entry survives: the weak policy drops it
// once no caller holds the instance, the strong policy keeps it until cleared,
// the bounded policy evicts by capacity and TTL.
//
// Stores are not a synchronization point for callers: a Get followed by a Set
// is not atomic.
type InstanceStore[T any] interface {
	Get(key string) (*T, bool)
	Set(key string, obj *T)
	Delete(key string)
	Clear()
	Len() int
}
