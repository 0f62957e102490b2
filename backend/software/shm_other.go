// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package software

import "github.com/gogpu/present/target"

func allocShared(string, int) (int, []byte, error) {
	return -1, nil, target.ErrExportUnsupported
}

func releaseShared([]byte) {}
