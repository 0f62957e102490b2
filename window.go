package present

import (
	"github.com/gogpu/present/slot"
	"github.com/gogpu/present/target"
)

// WindowID identifies a window within its Bridge.
type WindowID uint64

// Window is the render-side state of one open toolkit window.
//
// A Window is owned by the bridge's owning thread: all mutation happens in
// Open and Poll. The render thread only ever reaches the producer-side
// frame cell, which is safe to take from concurrently; the toolkit thread
// reaches only the shared bundle it received in the open request.
type Window struct {
	id     WindowID
	config WindowConfig

	// commands carries directives to the toolkit window.
	commands chan Command

	// width/height are written by the toolkit on OS size events and
	// sampled once per poll tick.
	width  *slot.Dim
	height *slot.Dim

	// frames is the consumer-facing cell the toolkit presents from.
	frames *slot.Cell[Frame]

	// closed is raised by the toolkit when the OS window is destroyed.
	closed *slot.Flag

	// handle is the window's render-target registry key. It is unique
	// among live windows and stable across resizes.
	handle target.Handle

	// lastSize is the size of the last successful allocation; the zero
	// value means no target has been allocated yet. Sizes are clamped
	// to >= 1 before allocation, so the zero value can never collide
	// with an allocated size.
	lastSize target.Size

	// pending holds at most one frame built by Poll and not yet forwarded
	// by the render thread. A resize mid-cycle overwrites it: newest wins.
	pending slot.Cell[Frame]
}

// ID returns the window's identifier.
func (w *Window) ID() WindowID { return w.id }

// Config returns the configuration the window was opened with.
func (w *Window) Config() WindowConfig { return w.config }

// TargetHandle returns the window's render-target registry key. Hosts
// point their renderer at this handle; the texture behind it is replaced
// transparently on resize.
func (w *Window) TargetHandle() target.Handle { return w.handle }

// TargetSize returns the size of the current render target, or false if no
// target has been allocated yet. Owning-thread use only.
func (w *Window) TargetSize() (target.Size, bool) {
	if w.lastSize == (target.Size{}) {
		return target.Size{}, false
	}
	return w.lastSize, true
}

// Closed reports whether the toolkit has destroyed the OS window.
// The owning side tears the window down on its next poll tick.
func (w *Window) Closed() bool { return w.closed.Raised() }

// Send delivers a command to the toolkit window. Commands are rare UI
// directives; if the backlog (16) is full, Send blocks until the toolkit
// drains it.
func (w *Window) Send(cmd Command) {
	w.commands <- cmd
}

// openRequest builds the request that hands the shared bundle to the
// toolkit thread.
func (w *Window) openRequest() OpenRequest {
	return OpenRequest{
		Config:   w.config,
		Commands: w.commands,
		Width:    w.width,
		Height:   w.height,
		Frames:   w.frames,
		Closed:   w.closed,
	}
}
