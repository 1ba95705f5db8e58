package ringbuf

import "sync"

// Allocator supplies backing arrays for growable buffers.
//
// Realloc follows the realloc contract. On success it returns a slice
// with capacity at least 'capacity' whose leading bytes are the leading
// bytes of 'old' (all of them, or the first 'capacity' when shrinking);
// 'old' must not be used afterwards, the allocator may recycle it. On
// failure it returns (nil, err) and 'old' remains valid and untouched.
type Allocator interface {
	Realloc(old []byte, capacity int) ([]byte, error)
}

// HeapAllocator allocates exact-fit arrays from the Go heap. The zero
// value is ready to use.
type HeapAllocator struct{}

// Realloc returns a fresh array of exactly 'capacity' bytes carrying
// over the prefix of 'old' that fits. It never fails.
func (HeapAllocator) Realloc(old []byte, capacity int) ([]byte, error) {
	if len(old) > capacity {
		old = old[:capacity]
	}
	next := make([]byte, len(old), capacity)
	copy(next, old)
	return next, nil
}

// PoolAllocator recycles arrays through a sync.Pool, trading exact-fit
// capacities for fewer allocations in steady state. Arrays released by
// a grow are offered back to the pool, so a later Realloc may return
// one with capacity above the request. Shrinks still allocate exact-fit
// so that Trim keeps its meaning.
//
// The allocator itself is safe for concurrent use.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator creates an allocator with an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// Realloc serves grows from the pool when it holds a large enough
// array, falling back to the heap. It never fails.
func (a *PoolAllocator) Realloc(old []byte, capacity int) ([]byte, error) {
	if capacity <= len(old) {
		next := make([]byte, capacity)
		copy(next, old)
		a.release(old)
		return next, nil
	}
	next, ok := a.pool.Get().([]byte)
	if ok && cap(next) < capacity {
		// Too small for this request, leave it for a smaller one.
		a.pool.Put(next)
		ok = false
	}
	if ok {
		next = next[:len(old)]
	} else {
		next = make([]byte, len(old), capacity)
	}
	copy(next, old)
	a.release(old)
	return next, nil
}

func (a *PoolAllocator) release(b []byte) {
	if cap(b) > 0 {
		a.pool.Put(b[:0])
	}
}
