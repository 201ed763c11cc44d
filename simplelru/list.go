package simplelru

// Entry is an element of the recency list. The LRU keeps a pointer to each
// entry in its index so promotion and removal never scan the list.
type Entry[K comparable, V any] struct {
	// next and prev link entries in the list. The root sentinel closes the
	// ring: root.next is the most recently used entry, root.prev the least.
	next, prev *Entry[K, V]

	// list is the owner of this entry, nil once removed.
	list *List[K, V]

	Key   K
	Value V
}

// PrevEntry returns the previous (more recently used) entry or nil.
func (e *Entry[K, V]) PrevEntry() *Entry[K, V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// NextEntry returns the next (less recently used) entry or nil.
func (e *Entry[K, V]) NextEntry() *Entry[K, V] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// List is a doubly linked list ordered from most to least recently used.
// The zero value is not ready to use, call NewList.
type List[K comparable, V any] struct {
	root Entry[K, V] // sentinel, only next and prev are used
	len  int
}

// NewList returns an initialized list.
func NewList[K comparable, V any]() *List[K, V] {
	return new(List[K, V]).Init()
}

// Init clears the list.
func (l *List[K, V]) Init() *List[K, V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// Len returns the number of entries in the list.
func (l *List[K, V]) Len() int { return l.len }

// Front returns the most recently used entry or nil.
func (l *List[K, V]) Front() *Entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the least recently used entry or nil.
func (l *List[K, V]) Back() *Entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// insert links e after at.
func (l *List[K, V]) insert(e, at *Entry[K, V]) *Entry[K, V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// PushFront inserts a new entry at the head of the list and returns it.
func (l *List[K, V]) PushFront(k K, v V) *Entry[K, V] {
	return l.insert(&Entry[K, V]{Key: k, Value: v}, &l.root)
}

// Remove unlinks e from the list. It is a no-op for entries owned by
// another list or already removed.
func (l *List[K, V]) Remove(e *Entry[K, V]) V {
	if e.list == l {
		e.prev.next = e.next
		e.next.prev = e.prev
		e.next = nil // avoid memory leaks
		e.prev = nil
		e.list = nil
		l.len--
	}
	return e.Value
}

// MoveToFront moves e to the head of the list.
func (l *List[K, V]) MoveToFront(e *Entry[K, V]) {
	if e.list != l || l.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}
