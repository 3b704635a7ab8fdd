// Package cache provides a generic fixed-capacity key-value store with
// least-recently-used eviction.
//
// The core LRU type gives O(1) Has/Get/Put/Clear by pairing a hash index
// with an intrusive doubly linked recency list. It assumes a single caller
// and performs no locking of its own; wrap it with a mutex for concurrent
// use, or use ShardedCache, which composes one mutex-guarded LRU per shard
// for high-concurrency scenarios.
package cache
