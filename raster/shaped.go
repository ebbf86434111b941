package raster

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphatlas"
)

// Shaped rasterizes character sequences through HarfBuzz shaping.
// Ligatures, kerning pairs and complex scripts come out the way a text
// layout engine would position them, which matters when the cached unit
// is a character run rather than a single glyph.
//
// Shaping uses go-text/typesetting; the shaped glyph outlines are loaded
// with x/image/sfnt and filled with x/image/vector into one run mask.
//
// Shaped is not safe for concurrent use: the HarfBuzz shaper and the sfnt
// buffer carry internal mutable state. The atlas serializes Rasterize
// calls through its placement path.
type Shaped struct {
	gtFont *font.Font
	otFont *sfnt.Font
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	styles map[uint32]Style
}

// NewShaped parses the font data (TTF/OTF) and returns a rasterizer with
// no registered styles. The data is parsed twice: once for shaping and
// once for outline loading.
func NewShaped(fontData []byte) (*Shaped, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	gtFace, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("raster: parse font for shaping: %w", err)
	}
	otFont, err := sfnt.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font outlines: %w", err)
	}
	return &Shaped{
		gtFont: gtFace.Font,
		otFont: otFont,
		styles: make(map[uint32]Style),
	}, nil
}

// RegisterStyle binds a style id to concrete rendering parameters.
// Hinting is ignored; outline loading is unhinted.
func (s *Shaped) RegisterStyle(id uint32, st Style) error {
	if st.Size <= 0 {
		return fmt.Errorf("raster: style %d: size must be positive", id)
	}
	if st.DPI == 0 {
		st.DPI = 72
	}
	s.styles[id] = st
	return nil
}

// placedGlyph is one shaped glyph's outline plus its pen offset within
// the run, in 26.6 fixed point, y-down.
type placedGlyph struct {
	segs   sfnt.Segments
	dx, dy fixed.Int26_6
}

// Rasterize implements glyphatlas.Rasterizer.
func (s *Shaped) Rasterize(key glyphatlas.GlyphKey) (*glyphatlas.Bitmap, error) {
	st, ok := s.styles[key.Style]
	if !ok {
		return nil, &UnknownStyleError{Style: key.Style}
	}

	runes := []rune(key.Chars)
	if len(runes) == 0 {
		return blankBitmap(), nil
	}

	ppem := floatToFixed(st.Size * st.DPI / 72)
	out := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.gtFont),
		Size:      ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	placed, bounds, err := s.loadRun(out.Glyphs, ppem)
	if err != nil {
		return nil, err
	}
	if len(placed) == 0 {
		return blankBitmap(), nil
	}

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
	z := vector.NewRasterizer(w, h)
	for _, pg := range placed {
		fillSegments(z, pg, minX, minY)
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &glyphatlas.Bitmap{
		Mask:    mask,
		Width:   w,
		Height:  h,
		Bounds:  image.Rect(minX, minY, maxX, maxY),
		OriginX: -minX,
		OriginY: -minY,
	}, nil
}

// loadRun loads the outline of every shaped glyph, offset by the pen
// position, and accumulates the run's bounding box from the outline
// points. Control points are included, so the box is conservative.
func (s *Shaped) loadRun(glyphs []shaping.Glyph, ppem fixed.Int26_6) ([]placedGlyph, fixed.Rectangle26_6, error) {
	var placed []placedGlyph
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: math.MaxInt32, Y: math.MaxInt32},
		Max: fixed.Point26_6{X: math.MinInt32, Y: math.MinInt32},
	}

	var penX fixed.Int26_6
	for _, g := range glyphs {
		segs, err := s.otFont.LoadGlyph(&s.buf, sfnt.GlyphIndex(uint16(g.GlyphID)), ppem, nil) //nolint:gosec // GlyphID is uint16 by design
		if err != nil {
			return nil, bounds, fmt.Errorf("raster: load glyph %d: %w", g.GlyphID, err)
		}

		// Shaping offsets are y-up; sfnt segments are y-down.
		pg := placedGlyph{
			segs: segs,
			dx:   penX + g.XOffset,
			dy:   -g.YOffset,
		}
		penX += g.Advance

		if len(segs) == 0 {
			continue
		}
		placed = append(placed, pg)
		for _, seg := range segs {
			for _, pt := range segmentPoints(seg) {
				x := pt.X + pg.dx
				y := pt.Y + pg.dy
				if x < bounds.Min.X {
					bounds.Min.X = x
				}
				if y < bounds.Min.Y {
					bounds.Min.Y = y
				}
				if x > bounds.Max.X {
					bounds.Max.X = x
				}
				if y > bounds.Max.Y {
					bounds.Max.Y = y
				}
			}
		}
	}
	return placed, bounds, nil
}

// segmentPoints returns the points a segment actually uses; the unused
// Args slots are zero and must not leak into the bounding box.
func segmentPoints(seg sfnt.Segment) []fixed.Point26_6 {
	switch seg.Op {
	case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
		return seg.Args[:1]
	case sfnt.SegmentOpQuadTo:
		return seg.Args[:2]
	case sfnt.SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return nil
	}
}

// fillSegments replays one glyph's contours into the rasterizer,
// translated so the run's top-left lands at (0, 0).
func fillSegments(z *vector.Rasterizer, pg placedGlyph, minX, minY int) {
	fx := func(v fixed.Int26_6) float32 {
		return float32(v) / 64
	}
	open := false
	for _, seg := range pg.segs {
		a := seg.Args[0]
		b := seg.Args[1]
		c := seg.Args[2]
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(fx(a.X+pg.dx)-float32(minX), fx(a.Y+pg.dy)-float32(minY))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(fx(a.X+pg.dx)-float32(minX), fx(a.Y+pg.dy)-float32(minY))
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(
				fx(a.X+pg.dx)-float32(minX), fx(a.Y+pg.dy)-float32(minY),
				fx(b.X+pg.dx)-float32(minX), fx(b.Y+pg.dy)-float32(minY),
			)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(
				fx(a.X+pg.dx)-float32(minX), fx(a.Y+pg.dy)-float32(minY),
				fx(b.X+pg.dx)-float32(minX), fx(b.Y+pg.dy)-float32(minY),
				fx(c.X+pg.dx)-float32(minX), fx(c.Y+pg.dy)-float32(minY),
			)
		}
	}
	if open {
		z.ClosePath()
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, split runs by script before
// caching.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

var _ glyphatlas.Rasterizer = (*Shaped)(nil)
