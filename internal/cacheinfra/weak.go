package cacheinfra

import (
	"reflect"
	"runtime"
	"sync"
	"weak"
)

// weakStore maps keys to weak pointers. An entry is dropped once the garbage
// collector reclaims its instance. Cleanups run on a runtime goroutine, so the
// map is guarded even though callers get no atomicity across Get and Set.
//
// Instances must live on the heap. Zero-size types share one runtime address
// that cannot carry a weak handle, so their entries are pinned instead and
// behave like a strong store.
type weakStore[T any] struct {
	mu      sync.Mutex
	entries map[string]weak.Pointer[T]
	pinned  map[string]*T
}

type weakEntry[T any] struct {
	key string
	ptr weak.Pointer[T]
}

// NewWeakStore creates a store that never keeps an instance alive by itself.
func NewWeakStore[T any]() *weakStore[T] {
	s := &weakStore[T]{entries: map[string]weak.Pointer[T]{}}
	if reflect.TypeOf((*T)(nil)).Elem().Size() == 0 {
		s.pinned = map[string]*T{}
	}
	return s
}

func (s *weakStore[T]) Get(key string) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pinned != nil {
		obj, ok := s.pinned[key]
		return obj, ok
	}

	ptr, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	obj := ptr.Value()
	if obj == nil {
		delete(s.entries, key)
		return nil, false
	}
	return obj, true
}

func (s *weakStore[T]) Set(key string, obj *T) {
	if obj == nil {
		s.Delete(key)
		return
	}

	if s.pinned != nil {
		s.mu.Lock()
		s.pinned[key] = obj
		s.mu.Unlock()
		return
	}

	ptr := weak.Make(obj)

	s.mu.Lock()
	s.entries[key] = ptr
	s.mu.Unlock()

	runtime.AddCleanup(obj, s.evict, weakEntry[T]{key: key, ptr: ptr})
}

// evict removes key only if it still points at the collected instance; the
// key may have been rebound to a newer instance since.
func (s *weakStore[T]) evict(entry weakEntry[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.entries[entry.key]; ok && cur == entry.ptr {
		delete(s.entries, entry.key)
	}
}

func (s *weakStore[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	if s.pinned != nil {
		delete(s.pinned, key)
	}
}

func (s *weakStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]weak.Pointer[T]{}
	if s.pinned != nil {
		s.pinned = map[string]*T{}
	}
}

// Len counts entries whose instance is still alive.
func (s *weakStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.pinned)
	for key, ptr := range s.entries {
		if ptr.Value() == nil {
			delete(s.entries, key)
			continue
		}
		n++
	}
	return n
}
