// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package software

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// allocShared creates a sealed memfd of the given byte length and maps it
// read-write. The caller owns both the fd and the mapping independently.
func allocShared(label string, length int) (fd int, pix []byte, err error) {
	fd, err = unix.MemfdCreate(label, unix.MFD_CLOEXEC|unix.MFD_ALLOW_SEALING)
	if err != nil {
		return -1, nil, fmt.Errorf("memfd_create: %w", err)
	}

	if err = unix.Ftruncate(fd, int64(length)); err != nil {
		_ = unix.Close(fd)
		return -1, nil, fmt.Errorf("ftruncate: %w", err)
	}

	// Seal the size so the importing toolkit cannot shrink the buffer
	// under the renderer and trigger SIGBUS on a mapped write.
	if _, err = unix.FcntlInt(uintptr(fd), unix.F_ADD_SEALS, unix.F_SEAL_SHRINK); err != nil {
		_ = unix.Close(fd)
		return -1, nil, fmt.Errorf("seal: %w", err)
	}

	pix, err = unix.Mmap(fd, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return -1, nil, fmt.Errorf("mmap: %w", err)
	}
	return fd, pix, nil
}

func releaseShared(pix []byte) {
	if pix != nil {
		_ = unix.Munmap(pix)
	}
}
