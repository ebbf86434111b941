package glyphatlas

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Atlas is the multi-page glyph cache. It maps glyph keys to placements,
// routes new bitmaps to the most recently created page, and appends a
// fresh page when every placement attempt is rejected.
//
// The page list is append-only: pages are never removed or reordered, and
// placements are never moved or evicted, so any Placement an Atlas returns
// stays valid for the atlas's lifetime.
//
// A single mutex serializes the placement path, so glyphs are placed in
// strict call order and allocator state transitions are deterministic.
type Atlas struct {
	mu     sync.Mutex
	cfg    Config
	pages  []*Page
	lookup map[GlyphKey]Placement

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an atlas with the given configuration. The atlas starts
// with zero pages; the first page is created lazily on the first
// insertion.
func New(cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{
		cfg:    cfg.withDefaults(),
		lookup: make(map[GlyphKey]Placement),
	}, nil
}

// GetGlyph looks up the placement for (chars, style), rasterizing and
// placing the glyph on a miss. chars is canonicalized to NFC before the
// lookup.
func (a *Atlas) GetGlyph(r Rasterizer, chars string, style uint32) (Placement, error) {
	return a.Get(r, NewGlyphKey(chars, style))
}

// Get looks up the placement for key. On a hit it returns the stored
// Placement with no rasterization and no allocation work. On a miss it
// invokes the rasterizer, copies the bitmap into a page surface and
// records the placement under the key.
//
// A bitmap exceeding the configured page dimensions fails with
// GlyphTooLargeError; it can never fit in any page of this atlas.
func (a *Atlas) Get(r Rasterizer, key GlyphKey) (Placement, error) {
	if r == nil {
		return Placement{}, ErrNilRasterizer
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if pl, ok := a.lookup[key]; ok {
		a.hits.Add(1)
		a.pages[pl.Page].uses[key]++
		return pl, nil
	}
	a.misses.Add(1)

	bm, err := r.Rasterize(key)
	if err != nil {
		return Placement{}, fmt.Errorf("glyphatlas: rasterize %q: %w", key.Chars, err)
	}
	if err := validateBitmap(bm); err != nil {
		return Placement{}, err
	}

	// Checked before any allocation attempt: a second rejection from a
	// brand-new page is only possible for an oversized bitmap, and that
	// case must not open pages at all.
	if bm.Width+a.cfg.Padding > a.cfg.PageWidth || bm.Height+a.cfg.Padding > a.cfg.PageHeight {
		return Placement{}, &GlyphTooLargeError{
			Width: bm.Width, Height: bm.Height,
			PageWidth: a.cfg.PageWidth, PageHeight: a.cfg.PageHeight,
		}
	}

	page, alloc, err := a.allocate(bm.Width, bm.Height)
	if err != nil {
		return Placement{}, err
	}

	page.surf.WriteMask(alloc.X, alloc.Y, bm.Mask)

	pl := Placement{
		Page:    page.index,
		X:       alloc.X,
		Y:       alloc.Y,
		Width:   alloc.Width,
		Height:  alloc.Height,
		OriginX: bm.OriginX,
		OriginY: bm.OriginY,
	}
	a.lookup[key] = pl
	page.record(key, pl)

	return pl, nil
}

// allocate tries the most recent page first, then retries exactly once
// against a freshly appended page. The recency heuristic: consecutive
// glyphs tend to be similar in size, and the newest page is the one most
// likely to have free space.
func (a *Atlas) allocate(w, h int) (*Page, Allocation, error) {
	if len(a.pages) > 0 {
		page := a.pages[len(a.pages)-1]
		if alloc, ok := page.alloc.Allocate(w, h); ok {
			return page, alloc, nil
		}
	}

	page, err := a.appendPage()
	if err != nil {
		return nil, Allocation{}, err
	}
	alloc, ok := page.alloc.Allocate(w, h)
	if !ok {
		return nil, Allocation{}, ErrAllocationFailed
	}
	return page, alloc, nil
}

func (a *Atlas) appendPage() (*Page, error) {
	if a.cfg.MaxPages > 0 && len(a.pages) >= a.cfg.MaxPages {
		Logger().Warn("glyphatlas: page limit reached", "max_pages", a.cfg.MaxPages)
		return nil, &PagesExhaustedError{MaxPages: a.cfg.MaxPages}
	}
	page := newPage(len(a.pages), a.cfg)
	a.pages = append(a.pages, page)
	Logger().Debug("glyphatlas: page appended",
		"index", page.index,
		"width", a.cfg.PageWidth,
		"height", a.cfg.PageHeight)
	return page, nil
}

func validateBitmap(bm *Bitmap) error {
	if bm == nil || bm.Mask == nil || bm.Width <= 0 || bm.Height <= 0 {
		return ErrInvalidBitmap
	}
	if bm.Mask.Rect.Dx() != bm.Width || bm.Mask.Rect.Dy() != bm.Height {
		return ErrInvalidBitmap
	}
	return nil
}

// Has reports whether the key is already cached, without rasterizing.
func (a *Atlas) Has(key GlyphKey) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.lookup[key]
	return ok
}

// GlyphCount returns the total number of cached glyphs.
func (a *Atlas) GlyphCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.lookup)
}

// PageCount returns the number of pages currently in use.
func (a *Atlas) PageCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pages)
}

// Page returns the page at the given index, or nil if the index is out of
// range.
func (a *Atlas) Page(index int) *Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.pages) {
		return nil
	}
	return a.pages[index]
}

// Pages returns the ordered page list. The returned slice is a copy; the
// pages themselves are shared.
func (a *Atlas) Pages() []*Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	pages := make([]*Page, len(a.pages))
	copy(pages, a.pages)
	return pages
}

// Stats returns cache hit/miss counters and the page count.
func (a *Atlas) Stats() (hits, misses uint64, pageCount int) {
	a.mu.Lock()
	pageCount = len(a.pages)
	a.mu.Unlock()

	hits = a.hits.Load()
	misses = a.misses.Load()
	return
}

// Config returns the atlas configuration.
func (a *Atlas) Config() Config {
	return a.cfg
}
