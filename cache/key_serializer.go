package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-lifecycle/construct"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// maxDepth bounds recursion through pointers and containers so cyclic values
// still produce a key.
const maxDepth = 32

var fallbackDumper = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// defaultKeySerializer implements KeySerializer using reflection-based serialization.
// Every value is rendered with its dynamic type, so arguments that only print
// alike ("1", 1 and 1.0) never share a key. Pointers, funcs and channels are
// keyed by identity, containers and structs by content. JSON and then a spew
// dump cover whatever is left, keeping keys deterministic across runs.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from the namespace and construction args.
// Named arguments are rendered as kw:"name"=value.
func (s *defaultKeySerializer) SerializeKey(namespace string, args ...any) string {
	if len(args) == 0 {
		return namespace
	}

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, namespace)

	for _, arg := range args {
		parts = append(parts, s.serializeValue(arg, 0))
	}

	return strings.Join(parts, KeySeparator)
}

// serializeValue handles individual argument serialization based on type.
func (s *defaultKeySerializer) serializeValue(v any, depth int) string {
	if v == nil {
		return "nil"
	}

	if named, ok := v.(construct.NamedArg); ok {
		return "kw:" + strconv.Quote(named.Name) + "=" + s.serializeValue(named.Value, depth+1)
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	typ := rt.String()

	if depth > maxDepth {
		return "depth:" + typ
	}

	switch rt.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%s:%p", typ, v)
	case reflect.Ptr:
		if rv.IsNil() {
			return typ + ":nil"
		}
		return fmt.Sprintf("%s:%p", typ, v)
	case reflect.Slice:
		if rv.IsNil() {
			return typ + ":nil"
		}
		return fmt.Sprintf("%s[%d]:{%s}", typ, rv.Len(), s.serializeElems(rv, depth))
	case reflect.Array:
		return fmt.Sprintf("%s:{%s}", typ, s.serializeElems(rv, depth))
	case reflect.Map:
		if rv.IsNil() {
			return typ + ":nil"
		}
		return s.serializeMap(rv, typ, depth)
	case reflect.Struct:
		return s.serializeStruct(rv, rt, depth)
	case reflect.String:
		return typ + ":" + strconv.Quote(rv.String())
	}

	if s.isBasicType(rt.Kind()) {
		return fmt.Sprintf("%s:%v", typ, v)
	}

	return typ + ":" + s.jsonFallback(v)
}

func (s *defaultKeySerializer) serializeElems(rv reflect.Value, depth int) string {
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts[i] = s.serializeValue(rv.Index(i).Interface(), depth+1)
	}
	return strings.Join(parts, ",")
}

// serializeMap handles map serialization with sorted keys for determinism
func (s *defaultKeySerializer) serializeMap(rv reflect.Value, typ string, depth int) string {
	type pair struct {
		key   string
		value reflect.Value
	}

	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			key:   s.serializeValue(iter.Key().Interface(), depth+1),
			value: iter.Value(),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.key + "=" + s.serializeValue(p.value.Interface(), depth+1)
	}

	return fmt.Sprintf("%s[%d]:{%s}", typ, len(out), strings.Join(out, ","))
}

// serializeStruct handles struct serialization with field names. Structs
// without exported fields are dumped whole so distinct values keep distinct keys.
func (s *defaultKeySerializer) serializeStruct(rv reflect.Value, rt reflect.Type, depth int) string {
	parts := make([]string, 0, rv.NumField())
	hidden := false

	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			hidden = true
			continue
		}

		fieldValue := rv.Field(i)
		if !fieldValue.CanInterface() {
			continue
		}

		parts = append(parts, field.Name+":"+s.serializeValue(fieldValue.Interface(), depth+1))
	}

	if len(parts) == 0 && hidden {
		return rt.String() + ":" + fallbackDumper.Sprintf("%#v", rv.Interface())
	}

	return fmt.Sprintf("%s:{%s}", rt.String(), strings.Join(parts, ","))
}

// isBasicType checks if a kind represents a basic Go type
func (s *defaultKeySerializer) isBasicType(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// jsonFallback provides JSON serialization, then a spew dump when JSON fails.
func (s *defaultKeySerializer) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "fallback:" + fallbackDumper.Sprintf("%#v", v)
	}
	return "json:" + string(data)
}

// hashedKeySerializer digests keys longer than a threshold with xxhash so
// store keys stay short. The namespace prefix is kept readable.
type hashedKeySerializer struct {
	inner     KeySerializer
	threshold int
}

// NewHashedKeySerializer wraps inner. Keys longer than threshold bytes are
// replaced by namespace::xx:<hex digest>. A threshold below one hashes every key.
func NewHashedKeySerializer(inner KeySerializer, threshold int) KeySerializer {
	if inner == nil {
		inner = NewDefaultKeySerializer()
	}
	return &hashedKeySerializer{inner: inner, threshold: threshold}
}

func (h *hashedKeySerializer) SerializeKey(namespace string, args ...any) string {
	key := h.inner.SerializeKey(namespace, args...)
	if h.threshold > 0 && len(key) <= h.threshold {
		return key
	}
	return namespace + KeySeparator + "xx:" + strconv.FormatUint(xxhash.Sum64String(key), 16)
}
