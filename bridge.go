package present

import (
	"errors"
	"sync"

	"github.com/gogpu/present/slot"
	"github.com/gogpu/present/target"
)

// Bridge errors.
var (
	// ErrNilAllocator is returned when constructing a bridge without an
	// allocator.
	ErrNilAllocator = errors.New("present: allocator is nil")

	// ErrNilToolkit is returned when constructing a bridge without a
	// toolkit loop.
	ErrNilToolkit = errors.New("present: toolkit loop is nil")

	// ErrBridgeClosed is returned when opening a window on a closed bridge.
	ErrBridgeClosed = errors.New("present: bridge is closed")
)

// ToolkitLoop runs the UI toolkit's event loop on its own goroutine and
// services open requests. The loop owns the native windows; it must return
// when the request channel is closed.
//
// For each request the loop opens a native window, writes the shared size
// cells on OS size events, presents frames taken from the frame cell, and
// raises the closed flag when the user destroys the window.
type ToolkitLoop func(<-chan OpenRequest)

// OpenHook is called on the owning thread after a window is opened,
// before the first poll tick. Hosts use it to point their renderer at
// the window's render-target handle.
type OpenHook func(*Window)

// BridgeOption configures a Bridge.
type BridgeOption func(*bridgeOptions)

type bridgeOptions struct {
	registry *target.Registry
	primary  *WindowConfig
	hook     OpenHook
}

// WithRegistry shares the host's render-target registry instead of
// creating a private one. Renderers resolving targets by handle must use
// the same registry the bridge inserts into.
func WithRegistry(r *target.Registry) BridgeOption {
	return func(o *bridgeOptions) { o.registry = r }
}

// WithPrimaryWindow opens a window with the given configuration as soon as
// the bridge is constructed and marks it primary.
func WithPrimaryWindow(cfg WindowConfig) BridgeOption {
	return func(o *bridgeOptions) { o.primary = &cfg }
}

// WithOpenHook installs a hook invoked for every opened window.
func WithOpenHook(hook OpenHook) BridgeOption {
	return func(o *bridgeOptions) { o.hook = hook }
}

// Bridge connects a render loop to a UI toolkit running on its own thread.
//
// The host scheduler drives it as three ordered phases:
//
//   - [Bridge.Poll] once per tick on the owning thread: teardown of closed
//     windows, size feedback, render-target reallocation.
//   - [Bridge.Extract] at the start of each render cycle on the render
//     thread, then [Handoff.Publish] strictly after the render pass.
//
// No phase ever blocks on another thread: all cross-thread state is
// single-slot cells, per-dimension atomics, and a write-once flag.
type Bridge struct {
	alloc    target.Allocator
	registry *target.Registry
	hook     OpenHook

	// requests hands open requests to the toolkit loop; loopDone is
	// closed when the loop exits.
	requests chan OpenRequest
	loopDone chan struct{}

	mu      sync.Mutex
	windows map[WindowID]*Window
	handles map[target.Handle]WindowID
	nextID  WindowID
	primary WindowID
	closed  bool
}

// New creates a bridge and spawns the toolkit loop on its own goroutine.
//
// The allocator produces render targets (backend/wgpu or backend/software);
// the loop is the host's toolkit integration. Losing the loop later is
// unrecoverable: an Open after the loop has exited panics, since the
// supervisory relationship cannot be recreated.
func New(alloc target.Allocator, loop ToolkitLoop, opts ...BridgeOption) (*Bridge, error) {
	if alloc == nil {
		return nil, ErrNilAllocator
	}
	if loop == nil {
		return nil, ErrNilToolkit
	}

	var o bridgeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = target.NewRegistry()
	}

	b := &Bridge{
		alloc:    alloc,
		registry: o.registry,
		hook:     o.hook,
		requests: make(chan OpenRequest, 1),
		loopDone: make(chan struct{}),
		windows:  make(map[WindowID]*Window),
		handles:  make(map[target.Handle]WindowID),
	}

	go func() {
		defer close(b.loopDone)
		loop(b.requests)
	}()

	if o.primary != nil {
		w, err := b.Open(*o.primary)
		if err != nil {
			return nil, err
		}
		b.mu.Lock()
		b.primary = w.id
		b.mu.Unlock()
	}
	return b, nil
}

// Registry returns the render-target registry the bridge inserts into.
func (b *Bridge) Registry() *target.Registry {
	return b.registry
}

// Open creates a window entity and asks the toolkit thread to open the
// native window for it.
//
// Open panics if the toolkit loop has exited: a send on the request
// channel with no receiver means the supervisory thread is gone, which
// this subsystem cannot recover from.
func (b *Bridge) Open(cfg WindowConfig) (*Window, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBridgeClosed
	}
	b.nextID++
	w := &Window{
		id:       b.nextID,
		config:   cfg,
		commands: make(chan Command, commandBacklog),
		width:    slot.NewDim(),
		height:   slot.NewDim(),
		frames:   &slot.Cell[Frame]{},
		closed:   &slot.Flag{},
		handle:   b.newHandleLocked(),
	}
	b.windows[w.id] = w
	b.handles[w.handle] = w.id
	b.mu.Unlock()

	Logger().Info("opening window",
		"window", w.id, "title", cfg.Title, "target", w.handle)

	// Check the loop first: a buffered send could otherwise succeed with
	// nobody left to receive it.
	select {
	case <-b.loopDone:
		panic("present: toolkit loop terminated; cannot open window")
	default:
	}
	select {
	case b.requests <- w.openRequest():
	case <-b.loopDone:
		panic("present: toolkit loop terminated; cannot open window")
	}

	if b.hook != nil {
		b.hook(w)
	}
	return w, nil
}

// newHandleLocked generates a render-target handle unique against both the
// registry and windows whose first allocation has not happened yet.
// Caller holds b.mu.
func (b *Bridge) newHandleLocked() target.Handle {
	for {
		h := b.registry.NewHandle()
		if _, live := b.handles[h]; !live {
			return h
		}
	}
}

// Primary returns the window opened by WithPrimaryWindow.
func (b *Bridge) Primary() (*Window, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.windows[b.primary]
	return w, ok
}

// Window returns the live window with the given id.
func (b *Bridge) Window(id WindowID) (*Window, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.windows[id]
	return w, ok
}

// Windows returns a snapshot of the live windows.
func (b *Bridge) Windows() []*Window {
	b.mu.Lock()
	defer b.mu.Unlock()

	ws := make([]*Window, 0, len(b.windows))
	for _, w := range b.windows {
		ws = append(ws, w)
	}
	return ws
}

// Close tears down all windows and closes the request channel, which tells
// the toolkit loop to exit. Close does not wait for the loop.
func (b *Bridge) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	ws := make([]*Window, 0, len(b.windows))
	for _, w := range b.windows {
		ws = append(ws, w)
	}
	b.mu.Unlock()

	for _, w := range ws {
		b.destroy(w, "bridge closed")
	}
	close(b.requests)
	return b.alloc.Close()
}

// destroy removes a window entity and releases everything the owning side
// holds for it: the registry entry, the pending frame, and the handle.
// Frames already in the consumer-facing cell belong to the toolkit side
// and are dropped there.
func (b *Bridge) destroy(w *Window, reason string) {
	b.mu.Lock()
	delete(b.windows, w.id)
	delete(b.handles, w.handle)
	b.mu.Unlock()

	if t, ok := b.registry.Remove(w.handle); ok && t != nil {
		t.View.Release()
	}
	if f, ok := w.pending.Take(); ok {
		f.release()
		Logger().Warn("dropping undelivered frame", "window", w.id, "size", f.Size)
	}

	Logger().Info("window destroyed", "window", w.id, "reason", reason)
}
