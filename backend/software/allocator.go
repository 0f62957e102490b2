// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package software

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/present/target"
)

// Allocator errors.
var (
	// ErrAllocatorClosed is returned when allocating after Close.
	ErrAllocatorClosed = errors.New("software: allocator is closed")

	// ErrViewDestroyed is returned when accessing pixels of a destroyed view.
	ErrViewDestroyed = errors.New("software: pixel view has been destroyed")
)

// bytesPerPixel for the supported 32-bit formats.
const bytesPerPixel = 4

// Options configures an Allocator.
type Options struct {
	// Format is the pixel format the toolkit should interpret the shared
	// memory as. Default: gputypes.TextureFormatBGRA8Unorm, the layout
	// desktop compositors expect from shared-memory buffers.
	Format gputypes.TextureFormat

	// Label prefixes the name of the backing memory object.
	Label string
}

// Allocator creates shared-memory render targets.
type Allocator struct {
	mu     sync.Mutex
	opts   Options
	closed bool
}

// NewAllocator creates a shared-memory allocator.
func NewAllocator(opts *Options) *Allocator {
	a := &Allocator{}
	if opts != nil {
		a.opts = *opts
	}
	if a.opts.Format == gputypes.TextureFormatUndefined {
		a.opts.Format = gputypes.TextureFormatBGRA8Unorm
	}
	if a.opts.Label == "" {
		a.opts.Label = "present"
	}
	return a
}

// Allocate creates a shared-memory buffer sized to size. The target's view
// is a [PixelView] the renderer writes into; the export is the memfd the
// toolkit imports. On platforms without shared-memory buffer handles it
// returns target.ErrExportUnsupported.
func (a *Allocator) Allocate(size target.Size) (*target.Target, *target.BufferExport, error) {
	a.mu.Lock()
	opts := a.opts
	closed := a.closed
	a.mu.Unlock()

	if closed {
		return nil, nil, ErrAllocatorClosed
	}

	stride := size.Width * bytesPerPixel
	sizeBytes := uint64(stride) * uint64(size.Height)

	fd, pix, err := allocShared(opts.Label, int(sizeBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("software: shared memory allocation failed: %w", err)
	}

	view := &PixelView{pix: pix, stride: int(stride), size: size}
	export := target.NewBufferExport(fd, size, stride, sizeBytes)

	return &target.Target{
		View:        target.NewSharedView(view, nil),
		Format:      opts.Format,
		Size:        size,
		SampleCount: 1,
		Label:       fmt.Sprintf("%s shm target %s", opts.Label, size),
	}, export, nil
}

// Close marks the allocator closed.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	return nil
}

// PixelView is the CPU-side view of a shared-memory target.
// The renderer writes pixels through Pix; the toolkit sees the same bytes
// through its imported memfd without any copy.
type PixelView struct {
	mu        sync.Mutex
	pix       []byte
	stride    int
	size      target.Size
	destroyed bool
}

// Pix returns the mapped pixel bytes, row-major with Stride bytes per row.
// It returns ErrViewDestroyed after Destroy.
func (v *PixelView) Pix() ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.destroyed {
		return nil, ErrViewDestroyed
	}
	return v.pix, nil
}

// Stride returns the number of bytes per row.
func (v *PixelView) Stride() int { return v.stride }

// Size returns the view size in pixels.
func (v *PixelView) Size() target.Size { return v.size }

// Destroy unmaps the shared memory. The toolkit's imported fd keeps the
// underlying memory alive until the consumer closes it. Destroy is
// idempotent.
func (v *PixelView) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.destroyed {
		return
	}
	v.destroyed = true

	pix := v.pix
	v.pix = nil
	releaseShared(pix)
}

// Ensure the package satisfies its contracts.
var (
	_ target.Allocator = (*Allocator)(nil)
	_ target.View      = (*PixelView)(nil)
)
