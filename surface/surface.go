// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Surface is a fixed-size pixel grid that backs one atlas page.
//
// A Surface is exclusively owned by its page and written only through the
// atlas's single placement path; implementations do not need to be safe
// for concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the pixel format of the surface.
	Format() gputypes.TextureFormat

	// WriteMask copies an alpha mask into the surface with its top-left
	// corner at (x, y). Writes outside the surface bounds are clipped.
	WriteMask(x, y int, mask *image.Alpha)

	// Pixels returns direct access to the pixel data, or nil if the
	// surface does not support CPU access.
	Pixels() []byte

	// Stride returns the number of bytes per pixel row.
	Stride() int
}

// New constructs a Surface for a new page. The atlas calls it once per
// page it creates.
type New func(width, height int) Surface
