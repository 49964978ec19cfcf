// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbuf

import "unsafe"

// Options configures ring creation.
type Options struct {
	// Ordering mode: strict acquire/release unless relaxed
	relaxed bool

	// Capacity (must be a power of 2, >= 2)
	capacity int
}

// Builder creates rings with fluent configuration.
//
// Example:
//
//	// Strict ordering (default, correct on every target)
//	r := rbuf.Build[Frame](rbuf.Configure(1024))
//
//	// Relaxed ordering for a single-core target
//	r := rbuf.Build[Frame](rbuf.Configure(64).Relaxed())
//
//	// Narrow 8-bit counters
//	r := rbuf.BuildOf[Frame, uint8](rbuf.Configure(16))
type Builder struct {
	opts Options
}

// Configure creates a ring builder with the given capacity.
//
// Capacity must be a power of 2 and >= 2; the constructor the builder
// delegates to panics on violation.
func Configure(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// Relaxed downgrades the cross-side counter loads and stores from
// acquire/release to unordered.
//
// This omits barrier code on targets where the hardware provides the
// ordering for free: single-core systems where producer and consumer are
// interleaved on one CPU, or strictly in-order embedded targets. It is a
// correctness-relevant opt-in, not a performance knob — on a multi-core
// host with a weak memory model a relaxed ring can deliver torn data.
func (b *Builder) Relaxed() *Builder {
	b.opts.relaxed = true
	return b
}

// Build creates a Ring with word-width (64-bit) index counters.
func Build[T any](b *Builder) *Ring[T, uint64] {
	return BuildOf[T, uint64](b)
}

// BuildOf creates a Ring with an explicit index width.
func BuildOf[T any, I Index](b *Builder) *Ring[T, I] {
	return newRing[T, I](b.opts.capacity, b.opts.relaxed)
}

// BuildPtr creates a RingPtr for unsafe.Pointer values.
// RingPtr is always strictly ordered; Relaxed is ignored.
func (b *Builder) BuildPtr() *RingPtr {
	return NewPtr(b.opts.capacity)
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte
