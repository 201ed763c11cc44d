package lru

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to the 64-bit hash used to pick its shard.
type Hasher[K comparable] func(key K) uint64

// integer is the set of key types IntHasher accepts.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// StringHasher hashes string keys with xxhash.
func StringHasher[K ~string](key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// IntHasher hashes integer keys with xxhash over their little-endian
// encoding.
func IntHasher[K integer](key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return xxhash.Sum64(buf[:])
}
