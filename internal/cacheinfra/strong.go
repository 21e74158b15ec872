package cacheinfra

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// strongStore keeps every instance reachable until it is deleted or cleared.
type strongStore[T any] struct {
	entries *xsync.MapOf[string, *T]
}

// NewStrongStore creates an unbounded store holding strong references.
func NewStrongStore[T any]() *strongStore[T] {
	return &strongStore[T]{entries: xsync.NewMapOf[string, *T]()}
}

func (s *strongStore[T]) Get(key string) (*T, bool) {
	return s.entries.Load(key)
}

func (s *strongStore[T]) Set(key string, obj *T) {
	s.entries.Store(key, obj)
}

func (s *strongStore[T]) Delete(key string) {
	s.entries.Delete(key)
}

func (s *strongStore[T]) Clear() {
	s.entries.Clear()
}

func (s *strongStore[T]) Len() int {
	return s.entries.Size()
}
