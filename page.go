package glyphatlas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/glyphatlas/surface"
)

// Page is one fixed-size pixel surface plus the allocator bound to it and
// per-glyph usage accounting for diagnostics.
//
// Pages are created by the Atlas, never removed, and keep their index for
// the lifetime of the atlas.
type Page struct {
	index int
	surf  surface.Surface
	alloc Allocator

	// regions and uses track what lives where, for diagnostics and the
	// usage preview. Placement decisions never read them.
	regions map[GlyphKey]Placement
	uses    map[GlyphKey]uint64
}

func newPage(index int, cfg Config) *Page {
	return &Page{
		index:   index,
		surf:    cfg.NewSurface(cfg.PageWidth, cfg.PageHeight),
		alloc:   cfg.NewAllocator(cfg.PageWidth, cfg.PageHeight, cfg.Padding),
		regions: make(map[GlyphKey]Placement),
		uses:    make(map[GlyphKey]uint64),
	}
}

// Index returns the page's position in the atlas, assigned at creation.
func (p *Page) Index() int {
	return p.index
}

// Surface returns the pixel surface backing this page.
func (p *Page) Surface() surface.Surface {
	return p.surf
}

// GlyphCount returns the number of glyphs placed on this page.
func (p *Page) GlyphCount() int {
	return len(p.regions)
}

// Utilization returns the fraction of the page area used, in [0, 1].
func (p *Page) Utilization() float64 {
	return p.alloc.Utilization()
}

// Summary returns the allocator's one-line utilization description.
func (p *Page) Summary() string {
	return p.alloc.Summary()
}

// Uses returns how many times the given key has been looked up on this
// page, including the insertion itself.
func (p *Page) Uses(key GlyphKey) uint64 {
	return p.uses[key]
}

// record stores a freshly placed glyph in the page's accounting.
func (p *Page) record(key GlyphKey, pl Placement) {
	p.regions[key] = pl
	p.uses[key] = 1
}

// Preview colors distinguish occupied rectangles from free space.
var (
	previewFree     = color.RGBA{R: 32, G: 32, B: 40, A: 255}
	previewOccupied = color.RGBA{R: 96, G: 200, B: 128, A: 255}
)

// UsagePreview renders a diagnostic image of the page: occupied
// rectangles in green over a dark background. Read-only; it has no effect
// on cache state.
func (p *Page) UsagePreview() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.surf.Width(), p.surf.Height()))
	draw.Draw(img, img.Rect, image.NewUniform(previewFree), image.Point{}, draw.Src)
	for _, pl := range p.regions {
		draw.Draw(img, pl.Rect(), image.NewUniform(previewOccupied), image.Point{}, draw.Src)
	}
	return img
}
