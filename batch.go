// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbuf

// PushBatch copies as many elements of src as fit into the ring
// (producer only). Returns the number written, 0..len(src).
//
// The opposite counter is reloaded each iteration, so a batch can keep
// filling slots the consumer frees while the call is in flight. A run that
// crosses the physical end of the buffer is written as two contiguous
// segments.
func (r *Ring[T, I]) PushBatch(src []T) int {
	return r.pushBatch(src, nil)
}

// PushBatchFunc is PushBatch with a notification callback invoked once
// after every head publish (producer only). The callback typically signals
// a waiting consumer that data became readable; it is never invoked when
// nothing was written.
func (r *Ring[T, I]) PushBatchFunc(src []T, fn func()) int {
	return r.pushBatch(src, fn)
}

func (r *Ring[T, I]) pushBatch(src []T, fn func()) int {
	written := 0
	head := I(r.head.LoadRelaxed())

	for written < len(src) {
		tail := r.loadOpposite(&r.tail)
		space := r.size - (head - tail)
		if space == 0 {
			break
		}

		n := len(src) - written
		if uint64(space) < uint64(n) {
			n = int(space)
		}

		// Two-segment copy across the wrap boundary: slot head&mask to
		// the end of the buffer, then the remainder from slot 0.
		first := copy(r.buffer[head&r.mask:], src[written:written+n])
		if first < n {
			copy(r.buffer, src[written+first:written+n])
		}

		written += n
		head += I(n)
		r.publish(&r.head, head)

		if fn != nil {
			fn()
		}
	}
	return written
}

// PopBatch copies up to len(dst) elements out of the ring in FIFO order
// (consumer only). Returns the number read, 0..len(dst).
//
// Symmetric to PushBatch: the head counter is reloaded each iteration to
// pick up elements produced while the call drains, and wrapped runs are
// read as two contiguous segments.
func (r *Ring[T, I]) PopBatch(dst []T) int {
	return r.popBatch(dst, nil)
}

// PopBatchFunc is PopBatch with a notification callback invoked once after
// every tail publish (consumer only). The callback typically signals a
// waiting producer that space became writable.
func (r *Ring[T, I]) PopBatchFunc(dst []T, fn func()) int {
	return r.popBatch(dst, fn)
}

func (r *Ring[T, I]) popBatch(dst []T, fn func()) int {
	read := 0
	tail := I(r.tail.LoadRelaxed())

	for read < len(dst) {
		head := r.loadOpposite(&r.head)
		avail := head - tail
		if avail == 0 {
			break
		}

		n := len(dst) - read
		if uint64(avail) < uint64(n) {
			n = int(avail)
		}

		first := copy(dst[read:read+n], r.buffer[tail&r.mask:])
		if first < n {
			copy(dst[read+first:read+n], r.buffer)
		}

		read += n
		tail += I(n)
		r.publish(&r.tail, tail)

		if fn != nil {
			fn()
		}
	}
	return read
}
