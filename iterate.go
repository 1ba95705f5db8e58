package ringbuf

import "iter"

// All returns an iterator over the addresses of all elements, oldest
// first. The ring must not be mutated during the walk.
func (r *Ring[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := 0; n < r.used; n++ {
			if !yield(r.nth(n)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the addresses of all elements,
// newest first. The ring must not be mutated during the walk.
func (r *Ring[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := r.used - 1; n >= 0; n-- {
			if !yield(r.nth(n)) {
				return
			}
		}
	}
}
