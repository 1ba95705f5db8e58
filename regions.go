package ringbuf

// span cuts the circular run of 'n' slots beginning at physical index
// 'begin' into at most two contiguous slices. When the run does not wrap
// the second slice is zero-length. Both slices always point into the
// backing store, even at n == 0, so they are safe to hand to vectored
// I/O as-is.
func (r *Ring[T]) span(begin, n int) (first, last []T) {
	if begin+n > len(r.data) {
		return r.data[begin:], r.data[:begin+n-len(r.data)]
	}
	return r.data[begin : begin+n], r.data[begin+n : begin+n]
}

// Used returns the occupied slots as at most two slices, oldest element
// first. len(first)+len(last) == Len().
//
// The slices alias the backing store; writing through them edits the
// elements in place. They are invalidated by the next mutation.
func (r *Ring[T]) Used() (first, last []T) {
	return r.span(r.start, r.used)
}

// Avail returns the free slots as at most two slices, in the order
// PushBack would claim them. len(first)+len(last) == Free().
//
// The usual cycle is: fill some prefix of first (then last), then
// Commit the number of slots written.
func (r *Ring[T]) Avail() (first, last []T) {
	end := r.start + r.used
	if end >= len(r.data) {
		end -= len(r.data)
	}
	return r.span(end, len(r.data)-r.used)
}

// Commit marks 'n' free slots as occupied, in the order Avail exposes
// them. The caller has already written the contents through the Avail
// slices. Panics if n is negative or exceeds Free().
func (r *Ring[T]) Commit(n int) {
	if n < 0 || n > len(r.data)-r.used {
		panic("ring commit out of range")
	}
	r.used += n
	r.gen++
}

// Discard releases the 'n' oldest occupied slots without touching their
// contents. Equivalent to n successful PopFront calls.
// Panics if n is negative or exceeds Len().
func (r *Ring[T]) Discard(n int) {
	if n < 0 || n > r.used {
		panic("ring discard out of range")
	}
	r.start += n
	if r.start >= len(r.data) {
		r.start -= len(r.data)
	}
	r.used -= n
	r.gen++
}
