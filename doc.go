// Package ringbuf provides zero-copy staging primitives for building
// I/O pipelines on top of caller-supplied memory.
//
// The package offers three building blocks:
//
//   - Ring: a fixed-capacity double-ended ring over a slice the caller
//     owns. Push operations reserve a slot and hand back its address so
//     the element is written in place; pop operations hand back the
//     address of the departing element. Nothing is ever copied or
//     allocated by the ring itself.
//
//   - Buf: a byte buffer with an explicit growth policy. A fixed buffer
//     wraps caller memory and fails cleanly when it runs out; a growable
//     buffer delegates to an Allocator (heap or pooled) and grows on
//     demand.
//
//   - FrameQ: a bounded queue of variable-length frames built from the
//     two primitives above, recycling per-slot buffers across a full
//     push/pop cycle.
//
// A Ring[byte] additionally plugs straight into vectored file I/O: the
// free and occupied spans are exposed as at most two slices, which
// FillFrom and DrainTo pass to readv(2)/writev(2) without intermediate
// copies.
//
// Example usage:
//
//	store := make([]byte, 4096)
//	r := ringbuf.NewRing(store)
//
//	// Stage bytes produced elsewhere.
//	for _, c := range []byte("hello") {
//		p, ok := r.PushBack()
//		if !ok {
//			break // ring full
//		}
//		*p = c
//	}
//
//	// Flush everything to a file descriptor in one writev call.
//	n, err := ringbuf.DrainTo(fd, r)
//
// None of the types are safe for concurrent use. Each instance belongs
// to one goroutine at a time; callers that share one add their own
// locking.
package ringbuf
