package cache

// LRU is a generic fixed-capacity key-value store with least-recently-used
// eviction. All operations are O(1).
//
// LRU performs no locking and assumes exclusive single-caller access. The
// internal list and index are mutated together; treat each call as a
// single atomic unit of change when wrapping with external mutual
// exclusion.
type LRU[K comparable, V any] struct {
	list     lruList[K, V]
	index    map[K]*lruNode[K, V]
	capacity int
}

// New creates an LRU cache holding at most capacity entries.
//
// Eviction is only attempted while the cache is non-empty, so a cache
// with capacity <= 0 still accepts one entry; the next insertion evicts
// it. This boundary is deliberate: capacity is enforced from the first
// entry onward, not at it.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		index:    make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Has reports whether key is present. It does not affect recency order.
func (c *LRU[K, V]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns the value stored for key. On a hit the entry becomes the
// most-recently-used. Returns (zero, false) on a miss; use Has to
// distinguish an absent key from a stored zero value.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.moveToTail(node)
	return node.value, true
}

// Put stores value under key and marks the entry most-recently-used.
//
// If key was already present, its value is replaced and the old value is
// returned. If inserting a new key pushes the cache past capacity, the
// least-recently-used entry is evicted and its value is returned.
// Otherwise the second return value is false.
func (c *LRU[K, V]) Put(key K, value V) (V, bool) {
	var prev V
	found := false

	if node, ok := c.index[key]; ok {
		prev = node.value
		node.value = value
		c.list.moveToTail(node)
		return prev, true
	}

	if c.list.len() > 0 && c.list.len() >= c.capacity {
		oldest := c.list.head
		c.list.remove(oldest)
		delete(c.index, oldest.key)
		prev = oldest.value
		found = true
	}

	node := &lruNode[K, V]{key: key, value: value}
	c.list.pushTail(node)
	c.index[key] = node
	return prev, found
}

// Remove deletes key from the cache, returning the removed value.
// Returns (zero, false) if key was not present.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	node, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.remove(node)
	delete(c.index, key)
	return node.value, true
}

// Clear empties the cache.
func (c *LRU[K, V]) Clear() {
	c.list.clear()
	clear(c.index)
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	return c.list.len()
}

// Capacity returns the configured capacity.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}
