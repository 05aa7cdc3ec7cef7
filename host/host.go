// Package host defines the boundary between ggtk and the host windowing
// toolkit: the ownership chain of widgets, top-level windows, and the
// deferred-callback primitive of the host event loop.
//
// ggtk never walks a global widget registry. Everything that needs to know
// which window a widget belongs to follows the Parent chain until it reaches
// a Window.
package host

import "time"

// Node is anything that lives in a widget tree.
type Node interface {
	// Parent returns the owning node, or nil for a root window.
	Parent() Node
}

// Window is a top-level window (a root window or a secondary top-level).
type Window interface {
	Node

	// Alive reports whether the window still exists and can accept
	// scheduling or OS queries. A destroyed window returns false forever.
	Alive() bool

	// Iconic reports whether the window is currently minimized.
	Iconic() bool

	// Handle returns the native window handle (HWND on Windows),
	// or 0 when the host does not expose one.
	Handle() uintptr
}

// DimensionBlocker is implemented by windows that can temporarily ignore
// their own resize notifications, e.g. while a DPI change is broadcast.
type DimensionBlocker interface {
	BlockDimensionEvents()
	UnblockDimensionEvents()
}

// TopLevel follows the ownership chain of n and returns the first Window
// it meets. It returns nil when the chain ends without one.
func TopLevel(n Node) Window {
	for n != nil {
		if w, ok := n.(Window); ok {
			return w
		}
		n = n.Parent()
	}
	return nil
}

// Scheduler is the host event loop's timer primitive. Callbacks scheduled
// through it run on the loop goroutine, serially with every other callback.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback returned by Scheduler.AfterFunc.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
}
