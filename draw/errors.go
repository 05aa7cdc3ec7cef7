// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "errors"

var (
	// ErrUnknownMethod is returned for method names that are not
	// registered.
	ErrUnknownMethod = errors.New("draw: unknown drawing method")

	// ErrUnknownOrientation is returned by ParseOrientation.
	ErrUnknownOrientation = errors.New("draw: unknown orientation")
)
