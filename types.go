// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbuf

// Index is the constraint for ring counter types.
//
// The counter width is load-bearing: occupancy is computed as head-tail
// under modular arithmetic in the chosen type, so overflow must wrap
// silently. Only unsigned types of at most the native word width qualify.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Producer is the producer-side view of a ring buffer.
//
// Hand a Producer to the writing stage of a pipeline so it cannot touch
// consumer-side state. Exactly one goroutine may use it.
type Producer[T any] interface {
	// Push adds one element (non-blocking).
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Push(elem *T) error

	// PushFunc pushes the value returned by fn.
	// fn is invoked only when a free slot exists.
	PushFunc(fn func() T) error

	// PushBatch copies as many elements of src as fit.
	// Returns the number written.
	PushBatch(src []T) int

	// PushBatchFunc is PushBatch with a callback after every publish.
	PushBatchFunc(src []T, fn func()) int

	// ProducerClear empties the ring by setting head = tail.
	ProducerClear()
}

// Consumer is the consumer-side view of a ring buffer.
// Exactly one goroutine may use it.
type Consumer[T any] interface {
	// Pop removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	Pop() (T, error)

	// PopBatch copies up to len(dst) elements out in FIFO order.
	// Returns the number read.
	PopBatch(dst []T) int

	// PopBatchFunc is PopBatch with a callback after every publish.
	PopBatchFunc(dst []T, fn func()) int

	// Peek returns the oldest element without removing it.
	Peek() (*T, error)

	// At returns the i-th unread element, 0 being the oldest.
	At(i int) (*T, error)

	// Discard drops up to count elements without reading them.
	// Returns the number discarded.
	Discard(count int) int

	// ConsumerClear empties the ring by setting tail = head.
	ConsumerClear()
}

// Buffer is the combined producer-consumer interface plus the query
// operations callable from either side.
//
// Example:
//
//	r := rbuf.New[Sample](1024)
//
//	var p rbuf.Producer[Sample] = r // producer goroutine gets this
//	var c rbuf.Consumer[Sample] = r // consumer goroutine gets this
type Buffer[T any] interface {
	Producer[T]
	Consumer[T]

	// Size returns the element count; a snapshot bound when racing the
	// other side, never outside [0, Cap()].
	Size() int

	// Available returns the free slot count; Size()+Available() == Cap()
	// for any quiescent observation.
	Available() int

	IsEmpty() bool
	IsFull() bool
	Cap() int
}
