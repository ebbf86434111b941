// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// Image is a CPU-backed Surface using a single-channel *image.Alpha.
//
// It tracks the dirty region touched since the last MarkClean call, so a
// GPU host can upload only what changed each frame.
type Image struct {
	img   *image.Alpha
	dirty image.Rectangle
}

// NewImage creates a CPU-backed surface of the given dimensions.
func NewImage(width, height int) Surface {
	return &Image{
		img: image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width in pixels.
func (s *Image) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Image) Height() int {
	return s.img.Rect.Dy()
}

// Format returns the pixel format (single-channel, 8 bits).
func (s *Image) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatR8Unorm
}

// WriteMask copies an alpha mask into the surface at (x, y).
func (s *Image) WriteMask(x, y int, mask *image.Alpha) {
	if mask == nil {
		return
	}
	dst := image.Rect(x, y, x+mask.Rect.Dx(), y+mask.Rect.Dy())
	clipped := dst.Intersect(s.img.Rect)
	if clipped.Empty() {
		return
	}
	draw.Draw(s.img, clipped, mask, mask.Rect.Min, draw.Src)
	s.dirty = s.dirty.Union(clipped)
}

// Pixels returns the raw alpha data, one byte per pixel.
func (s *Image) Pixels() []byte {
	return s.img.Pix
}

// Stride returns the number of bytes per row.
func (s *Image) Stride() int {
	return s.img.Stride
}

// Image returns the underlying *image.Alpha. The returned image shares
// memory with the surface.
func (s *Image) Image() *image.Alpha {
	return s.img
}

// Dirty returns the region written since the last MarkClean, and whether
// any region is dirty at all.
func (s *Image) Dirty() (image.Rectangle, bool) {
	return s.dirty, !s.dirty.Empty()
}

// MarkClean resets the dirty region, typically after a GPU upload.
func (s *Image) MarkClean() {
	s.dirty = image.Rectangle{}
}

var _ Surface = (*Image)(nil)
