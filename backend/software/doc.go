// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software implements the target.Allocator boundary with CPU
// shared memory instead of GPU textures.
//
// On Linux each target is backed by a sealed memfd, mapped into the
// renderer's address space as a [PixelView] and exported to the toolkit as
// the memfd itself, which the toolkit imports as a shared-memory buffer
// (wl_shm-style presentation). This serves hosts rendering on the CPU and
// toolkits that cannot import dmabufs.
//
// The handoff semantics are identical to backend/wgpu: same Allocator
// contract, same shared-view lifecycle, same export ownership transfer.
package software
