// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbuf

import "code.hybscloud.com/atomix"

// Ring is a bounded single-producer single-consumer ring buffer.
//
// Based on Lamport's ring buffer over two monotonic counters. The producer
// owns head (total elements written), the consumer owns tail (total elements
// read or discarded). Occupancy is head-tail under unsigned modular
// subtraction, which stays correct across counter wraparound as long as
// capacity <= 2^(W-1) for index width W.
//
// The index type I selects the counter width. Arithmetic is performed in I,
// so a Ring[T, uint8] wraps its counters at 255->0 exactly like an 8-bit
// register would. Use [New] for the default word-width counters.
//
// A Ring must not be copied after first use and must not be moved while the
// producer or the consumer is active.
//
// Memory: O(capacity) with no per-slot overhead
type Ring[T any, I Index] struct {
	_       pad
	head    atomix.Uint64 // Producer writes here
	_       pad
	tail    atomix.Uint64 // Consumer reads from here
	_       pad
	buffer  []T
	mask    I
	size    I
	relaxed bool
}

// New creates a ring buffer with word-width (64-bit) index counters.
//
// Capacity must be a power of 2 and >= 2. Unlike a queue that rounds its
// capacity up, an exact capacity is required here: the ring hands out the
// exact number of slots the caller asked for, and the index-width check
// depends on it. Panics on violation.
func New[T any](capacity int) *Ring[T, uint64] {
	return NewOf[T, uint64](capacity)
}

// NewOf creates a ring buffer with an explicit index width.
//
// Narrow index types are intended for targets where the counters are
// mirrored into narrow hardware registers or packed records. The capacity
// must satisfy capacity <= 2^(W-1) for index width W so that the occupancy
// subtraction stays unambiguous across counter wraparound. Panics on
// violation.
func NewOf[T any, I Index](capacity int) *Ring[T, I] {
	return newRing[T, I](capacity, false)
}

func newRing[T any, I Index](capacity int, relaxed bool) *Ring[T, I] {
	if capacity < 2 {
		panic("rbuf: capacity must be >= 2")
	}
	if capacity&(capacity-1) != 0 {
		panic("rbuf: capacity must be a power of 2")
	}
	// N <= 2^(W-1) keeps head-tail unambiguous across counter wraparound.
	// maxI>>1 is 2^(W-1)-1, so allow one more.
	if uint64(capacity) > (uint64(^I(0))>>1)+1 {
		panic("rbuf: capacity too large for index width")
	}
	return &Ring[T, I]{
		buffer:  make([]T, capacity),
		mask:    I(capacity - 1),
		size:    I(capacity),
		relaxed: relaxed,
	}
}

// loadOpposite reads the counter owned by the other side. Acquire pairs
// with the publishing release store; relaxed mode drops both for targets
// whose hardware provides the ordering anyway.
func (r *Ring[T, I]) loadOpposite(c *atomix.Uint64) I {
	if r.relaxed {
		return I(c.LoadRelaxed())
	}
	return I(c.LoadAcquire())
}

// publish makes a counter advance visible to the other side.
func (r *Ring[T, I]) publish(c *atomix.Uint64, v I) {
	if r.relaxed {
		c.StoreRelaxed(uint64(v))
	} else {
		c.StoreRelease(uint64(v))
	}
}

// Push adds one element to the ring (producer only).
// The element is copied into the ring's internal buffer.
// Returns ErrWouldBlock if the ring is full; the ring is left unchanged.
func (r *Ring[T, I]) Push(elem *T) error {
	head := I(r.head.LoadRelaxed())
	tail := r.loadOpposite(&r.tail)
	if head-tail == r.size {
		return ErrWouldBlock
	}

	r.buffer[head&r.mask] = *elem
	r.publish(&r.head, head+1)
	return nil
}

// PushFunc pushes one element obtained from fn (producer only).
//
// The free-space check happens first: fn is never invoked when the ring is
// full. This is the contract that distinguishes PushFunc from "generate,
// then try to push" — a side-effecting generator (sensor read, sequence
// number allocation) runs only when its output has a slot to land in.
func (r *Ring[T, I]) PushFunc(fn func() T) error {
	head := I(r.head.LoadRelaxed())
	tail := r.loadOpposite(&r.tail)
	if head-tail == r.size {
		return ErrWouldBlock
	}

	r.buffer[head&r.mask] = fn()
	r.publish(&r.head, head+1)
	return nil
}

// Pop removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
//
// The slot is not cleared: elements are treated as plain data and stale
// copies remain in the buffer until overwritten. Do not store types whose
// liveness matters for garbage collection; pass indices or use [RingPtr].
func (r *Ring[T, I]) Pop() (T, error) {
	tail := I(r.tail.LoadRelaxed())
	head := r.loadOpposite(&r.head)
	if tail == head {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := r.buffer[tail&r.mask]
	r.publish(&r.tail, tail+1)
	return elem, nil
}

// Peek returns a pointer to the oldest element without removing it
// (consumer only). Returns (nil, ErrWouldBlock) if the ring is empty.
// The pointer is valid until the slot is released by Pop, PopBatch,
// Discard or ConsumerClear.
func (r *Ring[T, I]) Peek() (*T, error) {
	tail := I(r.tail.LoadRelaxed())
	head := r.loadOpposite(&r.head)
	if tail == head {
		return nil, ErrWouldBlock
	}

	return &r.buffer[tail&r.mask], nil
}

// At returns a pointer to the i-th unread element, where 0 is the element
// Pop would return next (consumer only). Returns (nil, ErrWouldBlock) if
// fewer than i+1 elements are stored.
func (r *Ring[T, I]) At(i int) (*T, error) {
	tail := I(r.tail.LoadRelaxed())
	head := r.loadOpposite(&r.head)
	if i < 0 || uint64(i) >= uint64(head-tail) {
		return nil, ErrWouldBlock
	}

	return &r.buffer[(tail+I(i))&r.mask], nil
}

// Get returns a pointer to the i-th unread element without a bounds check
// (consumer only). Calling Get with i >= Size() is undefined behavior: the
// returned pointer aliases a slot the producer may be writing.
func (r *Ring[T, I]) Get(i int) *T {
	tail := I(r.tail.LoadRelaxed())
	return &r.buffer[(tail+I(i))&r.mask]
}

// Discard drops up to count elements without reading them (consumer only).
// Returns the number actually discarded: min(count, occupancy), 0 on an
// empty ring.
func (r *Ring[T, I]) Discard(count int) int {
	if count <= 0 {
		return 0
	}

	tail := I(r.tail.LoadRelaxed())
	// Relaxed is enough: the slot contents are never read, so there is
	// nothing for an acquire to order against.
	head := I(r.head.LoadRelaxed())
	n := count
	if avail := uint64(head - tail); avail < uint64(n) {
		n = int(avail)
	}
	if n > 0 {
		r.publish(&r.tail, tail+I(n))
	}
	return n
}

// ProducerClear empties the ring from the producer side by setting
// head = tail (producer only). Unsafe to call while the consumer is
// actively reading.
func (r *Ring[T, I]) ProducerClear() {
	r.head.StoreRelaxed(r.tail.LoadRelaxed())
}

// ConsumerClear empties the ring from the consumer side by setting
// tail = head (consumer only).
func (r *Ring[T, I]) ConsumerClear() {
	r.tail.StoreRelaxed(r.head.LoadRelaxed())
}

// Size returns the number of stored elements.
//
// Callable from either side. When called concurrently with the other side
// the result is a consistent snapshot bound, not an instantaneous count:
// a lower bound for the producer, an upper bound for the consumer.
func (r *Ring[T, I]) Size() int {
	head := r.loadOpposite(&r.head)
	tail := I(r.tail.LoadRelaxed())
	return int(head - tail)
}

// Available returns the number of free slots, with the same snapshot
// semantics as Size.
func (r *Ring[T, I]) Available() int {
	head := I(r.head.LoadRelaxed())
	tail := r.loadOpposite(&r.tail)
	return int(r.size - (head - tail))
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T, I]) IsEmpty() bool {
	return r.Size() == 0
}

// IsFull reports whether the ring has no free slots.
func (r *Ring[T, I]) IsFull() bool {
	return r.Available() == 0
}

// Cap returns the ring capacity.
func (r *Ring[T, I]) Cap() int {
	return int(r.size)
}
