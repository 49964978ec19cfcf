// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingPtr is a bounded SPSC ring buffer for unsafe.Pointer values.
// Useful for zero-copy handoff of large objects between goroutines: the
// producer enqueues a pointer and transfers ownership to the consumer.
//
// RingPtr always uses word-width counters and strict acquire/release
// ordering.
type RingPtr struct {
	_      pad
	head   atomix.Uint64
	_      pad
	tail   atomix.Uint64
	_      pad
	buffer []unsafe.Pointer
	mask   uint64
}

// NewPtr creates a ring buffer for unsafe.Pointer values.
// Capacity must be a power of 2 and >= 2; panics on violation.
func NewPtr(capacity int) *RingPtr {
	if capacity < 2 {
		panic("rbuf: capacity must be >= 2")
	}
	if capacity&(capacity-1) != 0 {
		panic("rbuf: capacity must be a power of 2")
	}
	return &RingPtr{
		buffer: make([]unsafe.Pointer, capacity),
		mask:   uint64(capacity - 1),
	}
}

// Push adds a pointer to the ring (producer only).
// Returns ErrWouldBlock if the ring is full.
func (r *RingPtr) Push(elem unsafe.Pointer) error {
	head := r.head.LoadRelaxed()
	tail := r.tail.LoadAcquire()
	if head-tail > r.mask {
		return ErrWouldBlock
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to r.buffer[head&r.mask] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(head&r.mask)*ptrSize)) = elem
	r.head.StoreRelease(head + 1)
	return nil
}

// Pop removes and returns the oldest pointer (consumer only).
// Returns (nil, ErrWouldBlock) if the ring is empty.
func (r *RingPtr) Pop() (unsafe.Pointer, error) {
	tail := r.tail.LoadRelaxed()
	head := r.head.LoadAcquire()
	if tail == head {
		return nil, ErrWouldBlock
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to elem := r.buffer[tail&r.mask]
	elem := *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buffer)), int(tail&r.mask)*ptrSize))
	r.tail.StoreRelease(tail + 1)
	return elem, nil
}

// Peek returns the oldest pointer without removing it (consumer only).
// Returns (nil, ErrWouldBlock) if the ring is empty.
func (r *RingPtr) Peek() (unsafe.Pointer, error) {
	tail := r.tail.LoadRelaxed()
	head := r.head.LoadAcquire()
	if tail == head {
		return nil, ErrWouldBlock
	}
	return r.buffer[tail&r.mask], nil
}

// Size returns the number of stored pointers; same snapshot semantics as
// [Ring.Size].
func (r *RingPtr) Size() int {
	head := r.head.LoadAcquire()
	tail := r.tail.LoadRelaxed()
	return int(head - tail)
}

// Available returns the number of free slots.
func (r *RingPtr) Available() int {
	head := r.head.LoadRelaxed()
	tail := r.tail.LoadAcquire()
	return int(r.mask + 1 - (head - tail))
}

// IsEmpty reports whether the ring holds no pointers.
func (r *RingPtr) IsEmpty() bool {
	return r.Size() == 0
}

// IsFull reports whether the ring has no free slots.
func (r *RingPtr) IsFull() bool {
	return r.Available() == 0
}

// Cap returns the ring capacity.
func (r *RingPtr) Cap() int {
	return int(r.mask + 1)
}
