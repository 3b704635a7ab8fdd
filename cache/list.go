package cache

// lruNode is one entry in the recency list. Nodes are owned by the list;
// the cache index holds non-owning handles into it.
type lruNode[K comparable, V any] struct {
	key        K
	value      V
	prev, next *lruNode[K, V]
}

// lruList is an intrusive doubly linked recency list. The head is the
// least-recently-used node and the tail the most-recently-used. Append
// and removal-by-node are O(1), which is what makes the cache operations
// O(1): the index stores direct node handles.
type lruList[K comparable, V any] struct {
	head, tail *lruNode[K, V]
	size       int
}

// pushTail appends node at the tail (most-recent position).
func (l *lruList[K, V]) pushTail(node *lruNode[K, V]) {
	node.prev = l.tail
	node.next = nil
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.size++
}

// remove unlinks node from the list. The node must be in the list.
func (l *lruList[K, V]) remove(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.size--
}

// moveToTail marks node as most-recently-used.
func (l *lruList[K, V]) moveToTail(node *lruNode[K, V]) {
	if l.tail == node {
		return
	}
	l.remove(node)
	l.pushTail(node)
}

// len returns the number of nodes in the list.
func (l *lruList[K, V]) len() int {
	return l.size
}

// clear drops all nodes.
func (l *lruList[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}
