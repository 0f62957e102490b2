package present

import (
	"github.com/gogpu/present/slot"
)

// renderWindow is the transient per-cycle copy of one window's pending
// frame, carried from the extract phase to the publish phase. The render
// thread cannot mutate window entities directly; it works on these
// copies instead.
type renderWindow struct {
	dest  *slot.Cell[Frame]
	frame Frame
}

// Handoff holds the frames extracted for one render cycle.
type Handoff struct {
	windows []renderWindow
}

// Extract runs the first render-thread phase. Call it at the start of each
// render cycle, before the render pass.
//
// It takes (at most one per window) the frames Poll left pending and
// returns them as a Handoff to be published after the render pass
// completes. Windows with no pending frame are skipped; that is the steady
// state, not an error.
func (b *Bridge) Extract() *Handoff {
	h := &Handoff{}
	for _, w := range b.Windows() {
		f, ok := w.pending.Take()
		if !ok {
			continue
		}
		h.windows = append(h.windows, renderWindow{dest: w.frames, frame: f})
	}
	return h
}

// Publish runs the second render-thread phase. Call it strictly after the
// render pass of the same cycle: the ordering guarantee that a frame is
// never visible to the toolkit before its texture contents exist is
// enforced by this call order, not by extra synchronization.
//
// Each extracted frame is stored into its window's consumer-facing cell,
// overwriting any frame the toolkit has not presented yet (the superseded
// frame's resources are released here; the toolkit never saw it).
// Publish forwards each frame exactly once; calling it again is a no-op.
func (h *Handoff) Publish() {
	for i := range h.windows {
		rw := &h.windows[i]
		if old, ok := rw.dest.Replace(rw.frame); ok {
			old.release()
			Logger().Debug("superseded unpresented frame", "size", old.Size)
		}
	}
	h.windows = nil
}

// Pending returns the number of frames awaiting publication.
func (h *Handoff) Pending() int {
	return len(h.windows)
}
