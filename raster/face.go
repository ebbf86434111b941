package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// Style holds the rendering parameters behind one style id.
type Style struct {
	// Size is the font size in points.
	Size float64

	// DPI is the dots-per-inch resolution. 0 means 72.
	DPI float64

	// Hinting is the glyph hinting mode.
	Hinting font.Hinting
}

// Face rasterizes character sequences using golang.org/x/image's opentype
// face machinery. Each registered style id owns one font.Face.
//
// Face is not safe for concurrent use: font.Face carries internal
// rasterization buffers. The atlas serializes Rasterize calls through its
// placement path.
type Face struct {
	font  *opentype.Font
	faces map[uint32]font.Face
}

// NewFace parses the font data (TTF/OTF) and returns a rasterizer with no
// registered styles.
func NewFace(fontData []byte) (*Face, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	return &Face{
		font:  f,
		faces: make(map[uint32]font.Face),
	}, nil
}

// RegisterStyle binds a style id to concrete rendering parameters.
// Re-registering an id replaces its parameters; placements already cached
// under the old parameters are not invalidated.
func (f *Face) RegisterStyle(id uint32, s Style) error {
	if s.DPI == 0 {
		s.DPI = 72
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    s.Size,
		DPI:     s.DPI,
		Hinting: s.Hinting,
	})
	if err != nil {
		return fmt.Errorf("raster: style %d: %w", id, err)
	}
	f.faces[id] = face
	return nil
}

// Rasterize implements glyphatlas.Rasterizer.
func (f *Face) Rasterize(key glyphatlas.GlyphKey) (*glyphatlas.Bitmap, error) {
	face, ok := f.faces[key.Style]
	if !ok {
		return nil, &UnknownStyleError{Style: key.Style}
	}

	bounds, _ := font.BoundString(face, key.Chars)
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()

	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return blankBitmap(), nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(key.Chars)

	return &glyphatlas.Bitmap{
		Mask:    mask,
		Width:   w,
		Height:  h,
		Bounds:  image.Rect(minX, minY, maxX, maxY),
		OriginX: -minX,
		OriginY: -minY,
	}, nil
}

// blankBitmap satisfies the positive-dimension contract for sequences
// with no ink, e.g. spaces.
func blankBitmap() *glyphatlas.Bitmap {
	return &glyphatlas.Bitmap{
		Mask:   image.NewAlpha(image.Rect(0, 0, 1, 1)),
		Width:  1,
		Height: 1,
	}
}

var _ glyphatlas.Rasterizer = (*Face)(nil)
