package present

// HeaderBar selects how the toolkit window draws its header bar.
type HeaderBar uint8

const (
	// HeaderBarFull reserves space above the content for a full header bar.
	HeaderBarFull HeaderBar = iota

	// HeaderBarOverContent floats the header bar over the rendered content.
	HeaderBarOverContent

	// HeaderBarNone shows no header bar.
	HeaderBarNone
)

// String returns a human-readable name for the header bar mode.
func (h HeaderBar) String() string {
	switch h {
	case HeaderBarFull:
		return "full"
	case HeaderBarOverContent:
		return "over-content"
	case HeaderBarNone:
		return "none"
	default:
		return "unknown"
	}
}

// WindowConfig is the initial configuration of a toolkit window.
// It is sent to the toolkit thread once, inside the open request; later
// changes flow through the command stream.
type WindowConfig struct {
	// Width and Height are the initial window size in pixels.
	Width  uint32
	Height uint32

	// Title is the window title.
	Title string

	// Resizable allows the user to resize the window.
	Resizable bool

	// Maximized opens the window maximized.
	Maximized bool

	// Fullscreen opens the window fullscreen.
	Fullscreen bool

	// HeaderBar selects the header bar mode.
	HeaderBar HeaderBar
}

// DefaultWindowConfig returns the default window configuration:
// a resizable 1280x720 window titled "App" with a full header bar.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "App",
		Resizable: true,
		HeaderBar: HeaderBarFull,
	}
}
