// Package cache provides construction-key serialization and instance stores
// for the construction cache decorator.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - KeySerializer: Builds stable cache keys from a class namespace and construction args
//   - InstanceStore: Holds constructed instances by key under a lifetime Policy
//
// # Basic Usage
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey(cache.Namespace("app.Widget"), "gear", construct.Kw("debug", true))
//	// app_widget::string:"gear"::kw:"debug"=bool:true
//
//	store, err := cache.NewInstanceStore[Widget](cache.DefaultConfig())
//
// # Key Serialization Strategy
//
// The default key serializer uses reflection to handle various Go types. Every
// value is prefixed with its dynamic type, so "1", 1 and 1.0 never share a key:
//
//   - Named arguments: kw:"name"=value
//   - Strings: always quoted
//   - Pointers, funcs, channels: keyed by identity with %p formatting
//   - Basic types: type:value
//   - Slices/arrays: Recursive serialization of elements
//   - Maps: Sorted key-value pairs for deterministic output
//   - Structs: type name plus exported fields as name:value pairs
//   - Everything else: JSON, then a spew dump when JSON cannot encode the value
//
// Long keys can be shortened with NewHashedKeySerializer, which replaces the
// serialized arguments by their xxhash digest.
//
// # Policies
//
//   - PolicyWeak (default): entries vanish once no caller holds the instance
//   - PolicyStrong: entries persist until deleted or cleared
//   - PolicyBounded: a sturdyc client evicts by capacity and TTL
//
// Go has no way to observe when a strongly held instance stops being used,
// so PolicyStrong grows without bound unless the owner clears it.
//
// # Concurrency
//
// Stores do not make lookup-then-insert atomic. Callers that construct from
// several goroutines must serialize construction themselves.
package cache
