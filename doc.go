// Package lru provides a fixed size, thread-safe LRU cache.
//
// Cache pairs a hash index with an intrusive doubly linked recency list, so
// Get, Put and Remove run in constant time. The index stores a handle to each
// list entry rather than the value, which lets a hit promote its entry
// without scanning the list. When a new key is put into a full cache the
// least recently used entry is evicted first.
//
// Nil keys and values are rejected with ErrInvalidArgument, so a miss on Get
// is never confused with a cached nil.
//
// ShardedCache splits the keyspace across several independent Cache
// partitions to reduce lock contention. Recency is tracked per partition.
//
// All caches in this package take locks while operating, and are therefore
// thread-safe for consumers.
package lru
