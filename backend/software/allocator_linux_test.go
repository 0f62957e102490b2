// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package software

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/sys/unix"

	"github.com/gogpu/present/target"
)

func TestAllocate(t *testing.T) {
	a := NewAllocator(nil)
	defer a.Close()

	tgt, export, err := a.Allocate(target.Size{Width: 64, Height: 32})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer export.Close()
	defer tgt.View.Release()

	if tgt.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm default", tgt.Format)
	}
	if export.Stride != 64*4 {
		t.Errorf("stride = %d, want %d", export.Stride, 64*4)
	}
	if export.SizeBytes != uint64(64*4*32) {
		t.Errorf("sizeBytes = %d, want %d", export.SizeBytes, 64*4*32)
	}

	fd, err := export.FD()
	if err != nil || fd < 0 {
		t.Fatalf("FD = (%d, %v), want a valid descriptor", fd, err)
	}

	view, ok := tgt.View.View().(*PixelView)
	if !ok {
		t.Fatal("target view is not a *PixelView")
	}
	pix, err := view.Pix()
	if err != nil {
		t.Fatalf("Pix failed: %v", err)
	}
	if len(pix) != 64*4*32 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 64*4*32)
	}
}

// TestSharedMemoryVisibleThroughFD writes through the renderer's mapping
// and reads the bytes back through the exported fd, as the toolkit would.
func TestSharedMemoryVisibleThroughFD(t *testing.T) {
	a := NewAllocator(nil)
	defer a.Close()

	tgt, export, err := a.Allocate(target.Size{Width: 4, Height: 1})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer export.Close()
	defer tgt.View.Release()

	view := tgt.View.View().(*PixelView)
	pix, err := view.Pix()
	if err != nil {
		t.Fatalf("Pix failed: %v", err)
	}
	for i := range pix {
		pix[i] = byte(i)
	}

	fd, err := export.FD()
	if err != nil {
		t.Fatalf("FD failed: %v", err)
	}
	imported, err := unix.Mmap(fd, 0, len(pix), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		t.Fatalf("consumer mmap failed: %v", err)
	}
	defer func() { _ = unix.Munmap(imported) }()

	for i := range imported {
		if imported[i] != byte(i) {
			t.Fatalf("byte %d = %d through imported fd, want %d", i, imported[i], byte(i))
		}
	}
}

func TestExportDupAndClose(t *testing.T) {
	a := NewAllocator(nil)
	defer a.Close()

	tgt, export, err := a.Allocate(target.Size{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer tgt.View.Release()

	dup, err := export.Dup()
	if err != nil {
		t.Fatalf("Dup failed: %v", err)
	}

	if err := export.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := export.Close(); err != nil {
		t.Errorf("second Close = %v, want nil (idempotent)", err)
	}
	if _, err := export.FD(); !errors.Is(err, target.ErrExportClosed) {
		t.Errorf("FD after close = %v, want ErrExportClosed", err)
	}

	// The dup stays independently valid.
	if fd, err := dup.FD(); err != nil || fd < 0 {
		t.Errorf("dup FD = (%d, %v), want valid", fd, err)
	}
	if err := dup.Close(); err != nil {
		t.Errorf("dup Close failed: %v", err)
	}
}

func TestViewDestroy(t *testing.T) {
	a := NewAllocator(nil)
	defer a.Close()

	tgt, export, err := a.Allocate(target.Size{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer export.Close()

	view := tgt.View.View().(*PixelView)
	tgt.View.Release()

	if _, err := view.Pix(); !errors.Is(err, ErrViewDestroyed) {
		t.Errorf("Pix after destroy = %v, want ErrViewDestroyed", err)
	}
	view.Destroy() // idempotent
}

func TestAllocatorClosed(t *testing.T) {
	a := NewAllocator(nil)
	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, _, err := a.Allocate(target.Size{Width: 1, Height: 1}); !errors.Is(err, ErrAllocatorClosed) {
		t.Errorf("err = %v, want ErrAllocatorClosed", err)
	}
}
