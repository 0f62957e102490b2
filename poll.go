package present

import (
	"github.com/gogpu/present/target"
)

// Poll runs the owning-thread phase once. Call it once per scheduling
// tick, outside the render cycle.
//
// For every live window it:
//  1. Destroys the window if the toolkit has raised the closed flag.
//  2. Samples the shared size cells; a dimension still unset (or not a
//     valid pixel count) skips the window for this tick, which is the
//     normal state before the toolkit's first size report.
//  3. Clamps each dimension to at least 1 and compares against the last
//     allocated size; an unchanged size is a no-op, so a steady-state
//     window allocates nothing.
//  4. Otherwise allocates a new render target, replaces the registry entry
//     under the window's stable handle, and stores a frame for the render
//     thread to forward, overwriting any frame a previous tick left there.
//
// Poll never blocks on the toolkit thread.
func (b *Bridge) Poll() {
	for _, w := range b.Windows() {
		b.pollWindow(w)
	}
}

func (b *Bridge) pollWindow(w *Window) {
	log := Logger()

	if w.closed.Raised() {
		b.destroy(w, "toolkit window closed")
		return
	}

	width, okW := w.width.Pixels()
	height, okH := w.height.Pixels()
	if !okW || !okH {
		// No size reported yet; not an error.
		log.Debug("skipping window, no size report", "window", w.id)
		return
	}

	size := target.Size{Width: width, Height: height}.Clamped()
	if size == w.lastSize {
		return
	}

	tgt, export, err := b.alloc.Allocate(size)
	if err != nil {
		// Unrecoverable for this window; other windows are unaffected.
		log.Error("render target allocation failed",
			"window", w.id, "size", size, "err", err)
		b.destroy(w, "allocation failed")
		return
	}
	w.lastSize = size

	// Replacement, not insertion: renderers holding the handle see the
	// new target on their next lookup.
	if prev, ok := b.registry.Insert(w.handle, tgt); ok && prev != nil {
		prev.View.Release()
	}

	// The frame holds its own view reference so the texture survives even
	// if a later resize replaces the registry entry before presentation.
	view, err := tgt.View.Clone()
	if err != nil {
		// Cannot happen for a freshly allocated target.
		log.Error("cloning fresh target view failed", "window", w.id, "err", err)
		b.destroy(w, "target view unusable")
		return
	}

	if old, ok := w.pending.Replace(Frame{Size: size, View: view, Buffer: export}); ok {
		// Superseded before the render thread picked it up: newest wins.
		old.release()
	}

	log.Info("render target reallocated", "window", w.id, "size", size, "target", w.handle)
}
