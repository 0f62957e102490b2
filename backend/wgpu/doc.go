// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu implements the target.Allocator boundary on a wgpu HAL
// device.
//
// Each allocation creates a texture usable as a render attachment, derives
// a view of it, and asks an [Exporter] for a transferable handle to the
// texture's backing memory (a dmabuf fd on Linux). The exporter is an
// injection point because memory export is driver- and API-specific; hosts
// embedding a Vulkan-backed HAL supply their own.
//
// The allocator shares the host application's GPU device rather than
// creating one: pass a hal.Device directly, or a gpucontext.DeviceProvider
// that exposes its HAL device through the gogpu device-sharing convention
// (a HalDevice() method).
package wgpu
