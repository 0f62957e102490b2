// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/present/target"
)

// Allocator errors.
var (
	// ErrNilDevice is returned when constructing an allocator without a device.
	ErrNilDevice = errors.New("wgpu: HAL device is nil")

	// ErrNilExporter is returned when constructing an allocator without an
	// exporter. Targets whose memory cannot be exported cannot be presented.
	ErrNilExporter = errors.New("wgpu: memory exporter is nil")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// wgpu HAL device.
	ErrNoHALDevice = errors.New("wgpu: device provider does not expose a HAL device")

	// ErrAllocatorClosed is returned when allocating after Close.
	ErrAllocatorClosed = errors.New("wgpu: allocator is closed")
)

// Exporter exports a texture's backing memory as a transferable buffer
// descriptor. Implementations are driver-specific; a Vulkan-backed HAL
// exports VK_EXT_external_memory_dma_buf fds.
type Exporter interface {
	Export(tex hal.Texture, size target.Size, format gputypes.TextureFormat) (*target.BufferExport, error)
}

// Options configures an Allocator.
type Options struct {
	// Format is the texture pixel format.
	// Default: gputypes.TextureFormatRGBA8Unorm.
	Format gputypes.TextureFormat

	// Usage is ORed into the base usage (RenderAttachment | TextureBinding).
	Usage gputypes.TextureUsage

	// Label prefixes debug labels on created GPU objects.
	Label string
}

// halProvider is the gogpu device-sharing convention: providers that own a
// wgpu HAL device expose it as an untyped handle.
type halProvider interface {
	HalDevice() any
}

// Allocator creates render targets on a shared HAL device and exports their
// backing memory for presentation by an external toolkit.
//
// Allocator is safe for concurrent use, though the present package only
// calls it from the owning thread.
type Allocator struct {
	mu       sync.Mutex
	device   hal.Device
	exporter Exporter
	opts     Options
	closed   bool
}

// NewAllocator creates an allocator on device.
// The device is shared with the host and is not destroyed by Close.
func NewAllocator(device hal.Device, exporter Exporter, opts *Options) (*Allocator, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if exporter == nil {
		return nil, ErrNilExporter
	}

	a := &Allocator{device: device, exporter: exporter}
	if opts != nil {
		a.opts = *opts
	}
	if a.opts.Format == gputypes.TextureFormatUndefined {
		a.opts.Format = gputypes.TextureFormatRGBA8Unorm
	}
	return a, nil
}

// NewAllocatorFromProvider creates an allocator on the HAL device exposed by
// a gpucontext device provider. It returns ErrNoHALDevice if the provider
// does not follow the HalDevice() convention.
func NewAllocatorFromProvider(provider gpucontext.DeviceProvider, exporter Exporter, opts *Options) (*Allocator, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}

	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return NewAllocator(device, exporter, opts)
}

// Allocate creates a texture sized to size, derives its view, and exports
// its backing memory. The returned target's view owns both GPU objects:
// they are destroyed when the last reference is released.
func (a *Allocator) Allocate(size target.Size) (*target.Target, *target.BufferExport, error) {
	a.mu.Lock()
	device := a.device
	opts := a.opts
	closed := a.closed
	a.mu.Unlock()

	if closed {
		return nil, nil, ErrAllocatorClosed
	}

	label := fmt.Sprintf("%s render target %s", opts.Label, size)
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              size.Width,
			Height:             size.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        opts.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding | opts.Usage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wgpu: texture creation failed: %w", err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + " (view)",
		Format:        gputypes.TextureFormatUndefined, // inherit from texture
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("wgpu: texture view creation failed: %w", err)
	}

	export, err := a.exporter.Export(tex, size, opts.Format)
	if err != nil {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("wgpu: memory export failed: %w", err)
	}

	shared := target.NewSharedView(view, func() {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
	})

	return &target.Target{
		View:        shared,
		Format:      opts.Format,
		Size:        size,
		SampleCount: 1,
		Label:       label,
	}, export, nil
}

// Close marks the allocator closed. The shared device stays alive; targets
// already handed out remain valid until their views are released.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	return nil
}

// Ensure Allocator implements target.Allocator.
var _ target.Allocator = (*Allocator)(nil)
