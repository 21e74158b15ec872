package cacheinfra

import (
	"github.com/viccon/sturdyc"
)

// boundedStore wraps a sturdyc client. Entries leave the store when the
// client evicts them for capacity or when their TTL expires; instances that
// callers still hold stay valid either way.
type boundedStore[T any] struct {
	client *sturdyc.Client[*T]
}

// NewSturdycStore creates a bounded instance store backed by sturdyc.
// It validates the configuration and initializes a sturdyc client with the provided settings.
//
// Capacity, NumShards, TTL and EvictionPercentage are passed to sturdyc.New();
// other options are applied via ToSturdycOptions().
func NewSturdycStore[T any](cfg Config) (*boundedStore[T], error) {
	cfg.Policy = PolicyBounded
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[*T](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &boundedStore[T]{client: client}, nil
}

func (s *boundedStore[T]) Get(key string) (*T, bool) {
	obj, ok := s.client.Get(key)
	if !ok || obj == nil {
		return nil, false
	}
	return obj, true
}

func (s *boundedStore[T]) Set(key string, obj *T) {
	s.client.Set(key, obj)
}

func (s *boundedStore[T]) Delete(key string) {
	s.client.Delete(key)
}

// Clear removes every key the client currently reports.
func (s *boundedStore[T]) Clear() {
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
	}
}

func (s *boundedStore[T]) Len() int {
	return s.client.Size()
}
