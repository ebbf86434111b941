package glyphatlas

import "image"

// Bitmap is a rasterized glyph produced by a Rasterizer.
// It is produced once per distinct key and never mutated.
type Bitmap struct {
	// Mask holds the pixel coverage (alpha) data. Its bounds are
	// Width x Height starting at (0,0).
	Mask *image.Alpha

	// Width and Height are the bitmap's pixel dimensions. Both must be
	// strictly positive.
	Width, Height int

	// Bounds is the tight content region of the glyph relative to its
	// drawing origin, in pixels. Min is the top-left, Max the bottom-right.
	Bounds image.Rectangle

	// OriginX and OriginY describe how the glyph's drawing origin relates
	// to the bitmap's top-left corner: origin = top-left + (OriginX, OriginY).
	OriginX, OriginY int
}

// Rasterizer maps a glyph key to a pixel bitmap. Implementations must be
// deterministic per key and return bitmaps with strictly positive
// dimensions. Rasterization may be expensive; the Atlas calls it at most
// once per distinct key.
type Rasterizer interface {
	Rasterize(key GlyphKey) (*Bitmap, error)
}

// Placement locates a cached bitmap inside an atlas. It is immutable once
// created and remains valid for the lifetime of the atlas.
type Placement struct {
	// Page is the index of the page holding the bitmap.
	Page int

	// X, Y, Width, Height is the rectangle occupied inside the page.
	X, Y, Width, Height int

	// OriginX and OriginY are copied from the bitmap.
	OriginX, OriginY int
}

// Rect returns the occupied rectangle in page coordinates.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}
