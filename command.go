package present

import (
	"github.com/gogpu/present/slot"
)

// commandBacklog is the capacity of a window's command channel. Commands
// are rare UI directives, not per-frame data; a full backlog blocks the
// sender rather than dropping directives.
const commandBacklog = 16

// CommandKind discriminates window commands.
//
// The repertoire is an open set: toolkits must ignore kinds they do not
// recognize so the owning side can grow it without breaking older loops.
type CommandKind uint8

const (
	// CommandSetTitle changes the window title to Command.Title.
	CommandSetTitle CommandKind = iota

	// CommandSetFullscreen enters or leaves fullscreen per Command.Fullscreen.
	CommandSetFullscreen

	// CommandMinimize minimizes the window.
	CommandMinimize
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandSetTitle:
		return "set-title"
	case CommandSetFullscreen:
		return "set-fullscreen"
	case CommandMinimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Command is a directive from application logic to the toolkit window.
type Command struct {
	Kind CommandKind

	// Title is the new window title for CommandSetTitle.
	Title string

	// Fullscreen is the target state for CommandSetFullscreen.
	Fullscreen bool
}

// OpenRequest asks the toolkit thread to open one window. It carries the
// initial configuration together with the full shared-handle bundle the
// window and the owning side communicate through afterwards.
//
// An OpenRequest is consumed exactly once by the toolkit loop.
type OpenRequest struct {
	// Config is the initial window configuration.
	Config WindowConfig

	// Commands delivers directives from the owning side.
	Commands <-chan Command

	// Width and Height are written by the toolkit on every OS surface-size
	// change. They hold slot.DimUnset until the first report.
	Width  *slot.Dim
	Height *slot.Dim

	// Frames is the consumer-facing frame cell. The toolkit's presentation
	// callback takes the newest frame and imports its buffer.
	Frames *slot.Cell[Frame]

	// Closed is raised by the toolkit when the OS window is destroyed.
	Closed *slot.Flag
}
