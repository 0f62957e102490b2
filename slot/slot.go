// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package slot

import "sync/atomic"

// Cell is a single-slot transfer cell holding at most one value of type T.
//
// Store publishes a value, unconditionally replacing any value that has not
// been taken yet. Take removes and returns the pending value, if any.
// Both operations are lock-free single pointer swaps.
//
// The zero value is an empty cell ready for use. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	p atomic.Pointer[T]
}

// Store publishes v into the cell, overwriting any unconsumed value.
// The overwritten value, if there was one, becomes unobservable.
func (c *Cell[T]) Store(v T) {
	c.p.Store(&v)
}

// Take removes and returns the pending value.
// The second return is false if the cell was empty.
func (c *Cell[T]) Take() (T, bool) {
	if p := c.p.Swap(nil); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Replace publishes v and returns the value it displaced, if any.
// Producers whose values carry resources use Replace instead of Store so
// the overwritten value can be released rather than leaked.
func (c *Cell[T]) Replace(v T) (T, bool) {
	if p := c.p.Swap(&v); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Empty reports whether the cell currently holds no value.
// The answer may be stale by the time the caller acts on it; use Take for
// the authoritative remove-if-present operation.
func (c *Cell[T]) Empty() bool {
	return c.p.Load() == nil
}

// DimUnset is the sentinel a Dim holds before the toolkit thread has
// reported a size. It is negative so it can never collide with a pixel
// count.
const DimUnset int32 = -1

// Dim is one shared pixel dimension of a window surface.
//
// The toolkit thread overwrites it on every OS size event; the owning
// thread samples it once per scheduling tick. Width and height are two
// independent Dims with no ordering between them — a torn pair is at worst
// stale for one tick and self-corrects on the next.
type Dim struct {
	v atomic.Int32
}

// NewDim returns a Dim holding the unset sentinel.
func NewDim() *Dim {
	d := &Dim{}
	d.v.Store(DimUnset)
	return d
}

// Set records a reported dimension in pixels.
func (d *Dim) Set(px int32) {
	d.v.Store(px)
}

// Get returns the last reported dimension, or DimUnset.
func (d *Dim) Get() int32 {
	return d.v.Load()
}

// Pixels converts the last reported dimension to a pixel count.
// It returns false while the dimension is unset or negative.
func (d *Dim) Pixels() (uint32, bool) {
	v := d.v.Load()
	if v < 0 {
		return 0, false
	}
	return uint32(v), true
}

// Flag is a write-once boolean shared between threads.
// The only transition is false to true; Raise is idempotent.
type Flag struct {
	v atomic.Bool
}

// Raise sets the flag. Raising an already-raised flag is a no-op.
func (f *Flag) Raise() {
	f.v.Store(true)
}

// Raised reports whether the flag has been raised.
func (f *Flag) Raised() bool {
	return f.v.Load()
}
