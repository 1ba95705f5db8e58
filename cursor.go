package ringbuf

import "fmt"

var (
	// ErrStaleCursor reports a cursor that does not match the current
	// ring state, such as one minted before the last mutation.
	ErrStaleCursor = fmt.Errorf("stale ring cursor")

	// ErrIteratorDone reports a walk that stepped past either end of the
	// occupied run.
	ErrIteratorDone = fmt.Errorf("iterator done")
)

// Cursor is a position inside the occupied run of a Ring. Cursors are
// cheap values, but they are pinned to the ring state they were minted
// from: any mutation (push, pop, Commit, Discard, Reset) invalidates
// every outstanding cursor, and using one afterwards yields
// ErrStaleCursor instead of a misdirected element.
type Cursor struct {
	pos int    // physical slot index
	gen uint64 // ring generation the cursor was minted at
}

// seek checks that 'c' still belongs to this ring state and returns the
// logical offset it points at.
func (r *Ring[T]) seek(c Cursor) (int, error) {
	if c.gen != r.gen || c.pos < 0 || c.pos >= len(r.data) {
		return 0, ErrStaleCursor
	}
	n := c.pos - r.start
	if n < 0 {
		n += len(r.data)
	}
	if n >= r.used {
		return 0, ErrStaleCursor
	}
	return n, nil
}

// cursorAt mints a cursor for the logical offset 'n'.
func (r *Ring[T]) cursorAt(n int) Cursor {
	i := r.start + n
	if i >= len(r.data) {
		i -= len(r.data)
	}
	return Cursor{pos: i, gen: r.gen}
}

// FrontCursor returns a cursor on the oldest element.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) FrontCursor() (Cursor, bool) {
	if r.used == 0 {
		return Cursor{}, false
	}
	return r.cursorAt(0), true
}

// BackCursor returns a cursor on the newest element.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) BackCursor() (Cursor, bool) {
	if r.used == 0 {
		return Cursor{}, false
	}
	return r.cursorAt(r.used - 1), true
}

// At returns the address of the element under 'c'.
// Returns ErrStaleCursor if the ring has mutated since 'c' was minted.
func (r *Ring[T]) At(c Cursor) (*T, error) {
	n, err := r.seek(c)
	if err != nil {
		return nil, err
	}
	return r.nth(n), nil
}

// Next returns a cursor on the element after 'c' (towards the back).
// Returns ErrIteratorDone if 'c' is on the newest element, or
// ErrStaleCursor if the ring has mutated since 'c' was minted.
func (r *Ring[T]) Next(c Cursor) (Cursor, error) {
	n, err := r.seek(c)
	if err != nil {
		return Cursor{}, err
	}
	if n == r.used-1 {
		return Cursor{}, ErrIteratorDone
	}
	return r.cursorAt(n + 1), nil
}

// Prev returns a cursor on the element before 'c' (towards the front).
// Returns ErrIteratorDone if 'c' is on the oldest element, or
// ErrStaleCursor if the ring has mutated since 'c' was minted.
func (r *Ring[T]) Prev(c Cursor) (Cursor, error) {
	n, err := r.seek(c)
	if err != nil {
		return Cursor{}, err
	}
	if n == 0 {
		return Cursor{}, ErrIteratorDone
	}
	return r.cursorAt(n - 1), nil
}
