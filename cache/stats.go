package cache

// Stats is a point-in-time snapshot of ShardedCache counters.
type Stats struct {
	// Len is the current number of entries across all shards.
	Len int

	// Capacity is the per-shard capacity.
	Capacity int

	// TotalCapacity is the capacity across all shards.
	TotalCapacity int

	// Hits is the number of Get/GetOrCreate calls that found an entry.
	Hits uint64

	// Misses is the number of Get/GetOrCreate calls that did not.
	Misses uint64

	// HitRate is Hits / (Hits + Misses), or 0 before any lookups.
	HitRate float64

	// Evictions is the number of entries evicted due to capacity.
	Evictions uint64
}
