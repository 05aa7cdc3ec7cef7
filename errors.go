package ggtk

import "errors"

var (
	// ErrClosed is returned by operations on a closed Toolkit.
	ErrClosed = errors.New("ggtk: toolkit is closed")

	// ErrExternalScheduler is returned by Run and Post when the toolkit
	// was created with WithScheduler; the caller drives that scheduler.
	ErrExternalScheduler = errors.New("ggtk: scheduler is driven by the caller")
)
