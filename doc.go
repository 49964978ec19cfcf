// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rbuf provides a bounded, lock-free single-producer
// single-consumer ring buffer for plain-data elements.
//
// The ring is built for cross-goroutine handoff where locking is
// unacceptable: low-latency pipelines, audio block transfer, network hot
// paths, embedded-style producers. Exactly one goroutine produces and
// exactly one consumes; all synchronization reduces to acquire/release
// pairing on two monotonic counters, each isolated on its own cache line.
//
// # Quick Start
//
//	r := rbuf.New[int](1024)
//
//	// Producer
//	v := 42
//	if err := r.Push(&v); err != nil {
//	    // Ring full - handle backpressure
//	}
//
//	// Consumer
//	elem, err := r.Pop()
//	if err == nil {
//	    fmt.Println(elem)
//	}
//
// # Operations
//
// Producer side (one goroutine only):
//
//	Push(&v)                // single element
//	PushFunc(gen)           // gen called only when a slot is free
//	PushBatch(src)          // as many of src as fit
//	PushBatchFunc(src, cb)  // cb after every publish
//	ProducerClear()
//
// Consumer side (one goroutine only):
//
//	Pop()                   // single element
//	PopBatch(dst)           // up to len(dst) elements
//	PopBatchFunc(dst, cb)   // cb after every publish
//	Peek(), At(i), Get(i)   // in-place inspection
//	Discard(n)              // drop without reading
//	ConsumerClear()
//
// Either side: Size, Available, IsEmpty, IsFull, Cap.
//
// # Non-Blocking Contract
//
// No operation blocks. Full and empty are ordinary outcomes reported as
// [ErrWouldBlock] or a short count, never failures. A caller that wants to
// wait polls with backoff outside the ring:
//
//	backoff := iox.Backoff{}
//	for r.Push(&v) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Batch Transfer
//
// Batch operations move contiguous runs with at most two copies per
// iteration, bridging the physical wrap boundary of the backing array.
// They reload the opposite counter every iteration, so a PushBatch keeps
// filling slots that a concurrently running consumer frees, and a PopBatch
// keeps draining elements a concurrently running producer appends:
//
//	// Producer: write a block of samples, waking the consumer after
//	// every publish.
//	n := r.PushBatchFunc(block, func() { consumerReady.Signal() })
//
// # Index Width
//
// Counters default to 64 bits via [New]. [NewOf] selects a narrower
// unsigned width; occupancy arithmetic wraps modulo 2^W and remains
// correct across counter overflow as long as capacity <= 2^(W-1), which
// the constructor enforces:
//
//	r := rbuf.NewOf[byte, uint8](16) // 8-bit counters, capacity 16
//
// # Ordering Modes
//
// Strict acquire/release ordering is the default and is correct on every
// target. The builder's Relaxed option omits the barriers for single-core
// or strictly in-order targets where the hardware already provides the
// ordering:
//
//	r := rbuf.Build[Frame](rbuf.Configure(64).Relaxed())
//
// # Thread Safety
//
// One producer goroutine, one consumer goroutine. The producer is the sole
// writer of head, the consumer the sole writer of tail. Using multiple
// goroutines on either side is undefined behavior including data
// corruption; the ring does not detect it. For multi-producer or
// multi-consumer patterns use [code.hybscloud.com/lfq] instead.
//
// # Element Types
//
// Elements are treated as plain data and moved with raw copies. Popped
// slots are not cleared, so a stale copy remains in the buffer until
// overwritten. Types whose liveness matters for garbage collection should
// be passed as pool indices, or by pointer through [RingPtr].
//
// # Race Detection
//
// Go's race detector cannot observe the happens-before edges established
// by acquire/release ordering on the counters and reports false positives
// for concurrent producer/consumer use. Tests incompatible with race
// detection are skipped via the RaceEnabled constant.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions in tests.
package rbuf
