package lru

import (
	"fmt"
	"reflect"

	"github.com/venkatsvpr/lrucache/simplelru"
)

var (
	// ErrInvalidArgument is returned for a non-positive capacity or shard
	// count, a nil hasher, or a nil key or value passed to Put.
	ErrInvalidArgument = simplelru.ErrInvalidArgument

	// ErrIllegalState reports a broken internal invariant. It is not
	// reachable through the public API of a correct cache.
	ErrIllegalState = simplelru.ErrIllegalState
)

// validateEntry rejects nil keys and values before the cache is touched.
func validateEntry[K comparable, V any](key K, value V) error {
	if isNil(key) {
		return fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	if isNil(value) {
		return fmt.Errorf("%w: nil value for key %v", ErrInvalidArgument, key)
	}
	return nil
}

// isNil reports whether v is a nil interface or a nil pointer, map, slice,
// channel or func.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
