package ringbuf

import "fmt"

var ErrQueueIsFull = fmt.Errorf("queue is full")

// FrameQ is a bounded FIFO of variable-length byte frames. Each slot
// owns a growable Buf that survives the pop, so a slot that once held a
// large frame serves later frames of that size without reallocating.
//
// Like the primitives it is built from, a FrameQ is not safe for
// concurrent use.
type FrameQ struct {
	slots *Ring[Buf]

	pushes              uint64
	pushFailedQIsFull   uint64
	pushFailedFrameSize uint64
	pops                uint64
	popFailedQIsEmpty   uint64
	bytes               uint64
}

type FrameQStats struct {
	Pushes              uint64
	PushFailedQIsFull   uint64
	PushFailedFrameSize uint64

	Pops              uint64
	PopFailedQIsEmpty uint64

	Bytes uint64
}

// NewFrameQ creates a queue of 'capacity' frame slots growing through
// 'a'. Panics if capacity is not positive or 'a' is nil.
func NewFrameQ(capacity int, a Allocator) *FrameQ {
	if capacity <= 0 {
		panic("capacity must be > 0")
	}
	store := make([]Buf, capacity)
	for i := range store {
		store[i] = Growable(a)
	}
	return &FrameQ{slots: NewRing(store)}
}

// Stats retrieves the current statistics of the FrameQ
func (q *FrameQ) Stats() FrameQStats {
	return FrameQStats{
		Pushes:              q.pushes,
		PushFailedQIsFull:   q.pushFailedQIsFull,
		PushFailedFrameSize: q.pushFailedFrameSize,
		Pops:                q.pops,
		PopFailedQIsEmpty:   q.popFailedQIsEmpty,
		Bytes:               q.bytes,
	}
}

// Push copies 'frame' into the next free slot. The caller keeps
// ownership of 'frame'.
// Returns ErrQueueIsFull if every slot is occupied; any buffer error
// (overlap with a slot, overflow, allocator failure) is passed through
// and the queue is left as it was.
func (q *FrameQ) Push(frame []byte) error {
	slot, ok := q.slots.PushBack()
	if !ok {
		q.pushFailedQIsFull++
		return ErrQueueIsFull
	}
	slot.Reset()
	if err := slot.Append(frame); err != nil {
		// Give the claimed slot back before reporting.
		q.slots.PopBack()
		q.pushFailedFrameSize++
		return err
	}
	q.pushes++
	q.bytes += uint64(len(frame))
	return nil
}

// Pop releases the oldest frame, handing its bytes to 'reader' first.
// The slice is only valid inside the callback; a nil reader just drops
// the frame.
// Returns false if the queue is empty.
func (q *FrameQ) Pop(reader func(frame []byte)) bool {
	slot, ok := q.slots.PopFront()
	if !ok {
		q.popFailedQIsEmpty++
		return false
	}
	if reader != nil {
		reader(slot.Bytes())
	}
	q.pops++
	return true
}

// Len returns the number of queued frames.
func (q *FrameQ) Len() int {
	return q.slots.Len()
}

// Cap returns the fixed slot count.
func (q *FrameQ) Cap() int {
	return q.slots.Cap()
}
