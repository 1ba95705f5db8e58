package ringbuf

import (
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrFixed reports a grow request on a buffer without an allocator.
	ErrFixed = fmt.Errorf("buffer capacity is fixed")

	// ErrTooLarge reports a requested size that would overflow int.
	ErrTooLarge = fmt.Errorf("buffer size overflow")

	// ErrOverlap reports a source range aliasing the destination buffer.
	ErrOverlap = fmt.Errorf("source overlaps buffer")
)

// Buf is a byte buffer with an explicit growth policy. A fixed buffer
// wraps caller memory and reports ErrFixed when it runs out; a growable
// buffer grows through its Allocator. Every failing call leaves the
// buffer exactly as it was.
//
// The zero value is a fixed buffer of capacity zero.
type Buf struct {
	data  []byte
	alloc Allocator // nil for fixed buffers
}

// Fixed wraps 'store' as a non-growing buffer. len(store) is the
// initial size and cap(store) the capacity for the buffer's whole
// lifetime: Fixed(arr[:0]) is an empty buffer to fill, Fixed(arr) a
// full one to read.
func Fixed(store []byte) Buf {
	return Buf{data: store}
}

// Growable creates an empty buffer that grows through 'a'.
// Panics if 'a' is nil.
func Growable(a Allocator) Buf {
	if a == nil {
		panic("growable buffer needs an allocator")
	}
	return Buf{alloc: a}
}

// Len returns the current size in bytes.
func (b *Buf) Len() int {
	return len(b.data)
}

// Cap returns the current capacity in bytes.
func (b *Buf) Cap() int {
	return cap(b.data)
}

// Bytes returns the buffer contents. The slice aliases the buffer and
// is invalidated by any call that grows it.
func (b *Buf) Bytes() []byte {
	return b.data
}

// Reset truncates the buffer to size zero, keeping the capacity.
func (b *Buf) Reset() {
	b.data = b.data[:0]
}

// EnsureCapacity makes the total capacity at least 'n' bytes, growing
// through the allocator when the current array is too small. Size and
// contents are unchanged.
func (b *Buf) EnsureCapacity(n int) error {
	if n <= cap(b.data) {
		return nil
	}
	if b.alloc == nil {
		return ErrFixed
	}
	grown, err := b.alloc.Realloc(b.data, n)
	if err != nil {
		return err
	}
	b.data = grown[:len(b.data)]
	return nil
}

// EnsureRemaining makes room for at least 'n' more bytes after the
// current size. Overflow of size+n is detected up front, before any
// allocation happens.
func (b *Buf) EnsureRemaining(n int) error {
	if n <= cap(b.data)-len(b.data) {
		return nil
	}
	if n > math.MaxInt-len(b.data) {
		return ErrTooLarge
	}
	return b.EnsureCapacity(len(b.data) + n)
}

// Append copies 'p' after the current contents, growing as needed.
// Fails with ErrOverlap before touching anything if 'p' aliases the
// buffer, since growth could recycle the memory 'p' points into.
func (b *Buf) Append(p []byte) error {
	if b.overlaps(p) {
		return ErrOverlap
	}
	if err := b.EnsureRemaining(len(p)); err != nil {
		return err
	}
	n := len(b.data)
	b.data = b.data[:n+len(p)]
	copy(b.data[n:], p)
	return nil
}

// Trim shrinks the capacity to the current size through the allocator.
// A buffer that is already exact-fit is left alone, fixed or not.
func (b *Buf) Trim() error {
	if len(b.data) == cap(b.data) {
		return nil
	}
	if b.alloc == nil {
		return ErrFixed
	}
	trimmed, err := b.alloc.Realloc(b.data, len(b.data))
	if err != nil {
		return err
	}
	b.data = trimmed[:len(b.data)]
	return nil
}

// CopyFrom replaces the contents with a copy of 'src', growing as
// needed. Fails with ErrOverlap if the two buffers share memory.
func (b *Buf) CopyFrom(src *Buf) error {
	if b.overlaps(src.data) {
		return ErrOverlap
	}
	if err := b.EnsureCapacity(len(src.data)); err != nil {
		return err
	}
	b.data = b.data[:len(src.data)]
	copy(b.data, src.data)
	return nil
}

// overlaps reports whether 'p' points into the buffer's backing array.
// The check covers the full capacity, not just the current size, since
// appends write past the size.
func (b *Buf) overlaps(p []byte) bool {
	if len(p) == 0 || cap(b.data) == 0 {
		return false
	}
	whole := b.data[:cap(b.data)]
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(whole)))
	hi := lo + uintptr(len(whole))
	plo := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	phi := plo + uintptr(len(p))
	return plo < hi && lo < phi
}
