package present

import (
	"github.com/gogpu/present/target"
)

// Frame describes one rendered frame handed to the toolkit for
// presentation. A Frame is immutable once constructed.
type Frame struct {
	// Size is the pixel size the frame was rendered at. It always matches
	// the render target the frame was produced from.
	Size target.Size

	// View is a shared reference to the frame's texture. The render target
	// registry may already point at a newer texture; the underlying GPU
	// resource stays alive until this reference is also released.
	View *target.SharedView

	// Buffer is the transferable descriptor of the frame's backing memory.
	// Ownership passes to whoever takes the frame; the taker imports it
	// into its presentation surface and closes it.
	Buffer *target.BufferExport
}

// release drops the frame's resources. Called for frames that are
// superseded or dropped during teardown instead of being presented.
func (f Frame) release() {
	f.View.Release()
	if f.Buffer != nil {
		_ = f.Buffer.Close()
	}
}
