// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package slot provides the non-blocking shared primitives that carry state
// between the render-owning thread and a UI-toolkit thread.
//
// The package offers three primitives, all safe for concurrent use and none
// of which ever blocks:
//
//   - [Cell]: a single-slot transfer cell. Store overwrites any value the
//     consumer has not taken yet (newest wins), Take removes and returns the
//     pending value if there is one. It is deliberately not a queue: for
//     live rendering only the most recent frame matters.
//   - [Dim]: a shared pixel dimension. It starts at a sentinel meaning
//     "not yet reported" and is overwritten by the toolkit thread whenever
//     the OS delivers a new surface size.
//   - [Flag]: a write-once boolean, raised by the toolkit thread when the OS
//     window is destroyed and observed by the owning side to trigger
//     teardown.
//
// A Store never waits for a prior value to be consumed and a Take never
// waits for a producer, so a slow or stalled consumer cannot stall the
// producer's loop.
package slot
