// Package present hands rendered frames from a GPU render loop to a
// native UI toolkit running on its own thread.
//
// # Overview
//
// A renderer and a desktop toolkit are scheduled independently: the
// toolkit drives a native event loop, the renderer drives a per-frame
// cycle. present connects them without letting either block the other.
// The renderer draws into an offscreen render target; the toolkit imports
// each finished frame's exported buffer (a dmabuf or memfd on Linux) into
// its own presentation surface.
//
// # Quick Start
//
//	alloc := software.NewAllocator(nil)
//	bridge, err := present.New(alloc, runToolkit,
//	    present.WithPrimaryWindow(present.DefaultWindowConfig()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bridge.Close()
//
//	for running {
//	    bridge.Poll()          // owning thread, once per tick
//	    h := bridge.Extract()  // render thread, start of cycle
//	    renderFrame()          // host render pass
//	    h.Publish()            // render thread, after the pass
//	}
//
// # Architecture
//
// Cross-thread state is deliberately minimal and none of it blocks:
//
//   - two shared size cells (slot.Dim) the toolkit writes on OS resize
//     events and Poll samples once per tick
//   - a single-slot frame cell (slot.Cell) per window, overwritten on
//     publish so only the newest frame is ever presented
//   - a write-once closed flag (slot.Flag) that triggers teardown
//
// Render targets live in a target.Registry keyed by stable random handles;
// a resize replaces the texture behind the handle, so renderers keep
// pointing at the same handle across resizes. Texture views are
// reference-counted (target.SharedView): the registry, an in-flight frame,
// and the toolkit's last presented frame can all hold the same texture
// across a resize boundary.
//
// Allocation backends live under backend/: backend/wgpu creates GPU
// textures on a shared wgpu HAL device and exports dmabufs;
// backend/software backs targets with sealed memfds for CPU rendering.
//
// # Frames are superseded, not queued
//
// If the toolkit is slow, stalled, or has not presented the previous
// frame, a newly published frame simply replaces it. This is a
// live-rendering design choice: only the newest frame matters, and the
// render loop makes steady forward progress regardless of the consumer.
package present

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
