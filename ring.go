package ringbuf

// Ring is a fixed-capacity double-ended queue laid out circularly over a
// slice supplied by the caller. The ring never allocates and never copies
// elements: push operations reserve a slot and return its address, pop
// operations return the address of the slot being released.
//
// A returned address stays valid until the slot is reused by a later
// push, so the usual pattern is write-after-push and read-before-the-next
// mutation.
//
// Not safe for concurrent use.
type Ring[T any] struct {
	data  []T    // caller-supplied backing store, len(data) is the capacity
	start int    // physical index of the oldest element
	used  int    // number of occupied slots
	gen   uint64 // bumped on every mutation, validates cursors
}

// NewRing creates a ring over 'store'. The ring owns the slice for its
// whole lifetime; the caller must not resize it while the ring is live.
// Panics if 'store' is empty.
func NewRing[T any](store []T) *Ring[T] {
	if len(store) == 0 {
		panic("ring store must not be empty")
	}
	return &Ring[T]{data: store}
}

// Len returns the number of elements currently held.
func (r *Ring[T]) Len() int {
	return r.used
}

// Cap returns the fixed capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// Free returns the number of unoccupied slots.
func (r *Ring[T]) Free() int {
	return len(r.data) - r.used
}

// Reset discards all elements and rewinds the ring to its freshly
// constructed state. Slot contents are left as-is until overwritten.
func (r *Ring[T]) Reset() {
	r.start = 0
	r.used = 0
	r.gen++
}

// nth maps the logical offset 'n' (0 = oldest) to a slot address.
// Callers guarantee 0 <= n < used.
func (r *Ring[T]) nth(n int) *T {
	i := r.start + n
	if i >= len(r.data) {
		i -= len(r.data)
	}
	return &r.data[i]
}

// Front returns the address of the oldest element.
// Returns (nil, false) if the ring is empty.
func (r *Ring[T]) Front() (*T, bool) {
	if r.used == 0 {
		return nil, false
	}
	return r.nth(0), true
}

// Back returns the address of the newest element.
// Returns (nil, false) if the ring is empty.
func (r *Ring[T]) Back() (*T, bool) {
	if r.used == 0 {
		return nil, false
	}
	return r.nth(r.used - 1), true
}

// PushBack reserves the slot after the newest element and returns its
// address for the caller to fill in.
// Returns (nil, false) if the ring is full; the ring is left untouched.
func (r *Ring[T]) PushBack() (*T, bool) {
	if r.used == len(r.data) {
		return nil, false
	}
	r.used++
	r.gen++
	return r.nth(r.used - 1), true
}

// PushFront reserves the slot before the oldest element and returns its
// address for the caller to fill in.
// Returns (nil, false) if the ring is full; the ring is left untouched.
func (r *Ring[T]) PushFront() (*T, bool) {
	if r.used == len(r.data) {
		return nil, false
	}
	if r.start == 0 {
		r.start = len(r.data) - 1
	} else {
		r.start--
	}
	r.used++
	r.gen++
	return r.nth(0), true
}

// PopFront releases the oldest element and returns its address. The slot
// contents stay readable until a later push claims the slot.
// Returns (nil, false) if the ring is empty; the ring is left untouched.
func (r *Ring[T]) PopFront() (*T, bool) {
	if r.used == 0 {
		return nil, false
	}
	p := r.nth(0)
	r.start++
	if r.start == len(r.data) {
		r.start = 0
	}
	r.used--
	r.gen++
	return p, true
}

// PopBack releases the newest element and returns its address. The slot
// contents stay readable until a later push claims the slot.
// Returns (nil, false) if the ring is empty; the ring is left untouched.
func (r *Ring[T]) PopBack() (*T, bool) {
	if r.used == 0 {
		return nil, false
	}
	p := r.nth(r.used - 1)
	r.used--
	r.gen++
	return p, true
}
