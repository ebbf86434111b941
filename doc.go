// Package glyphatlas caches rasterized glyph bitmaps in fixed-size pixel
// pages so a character/style combination is rasterized at most once.
//
// # Overview
//
// An Atlas owns a growable, append-only list of Pages. Each Page is a
// fixed-size pixel surface bound to one bin-packing allocator that decides
// where inside the page a new bitmap is placed. Two allocator strategies
// are provided:
//
//   - ShelfAllocator packs left-to-right into horizontal rows ("shelves")
//     whose height grows to fit the tallest occupant. Good for proportional
//     fonts with mixed glyph heights.
//   - SlabAllocator packs into a grid of fixed-size cells with a carve-out
//     path for the occasional oversized glyph. Good for monospace fonts
//     where most glyphs share one cell size.
//
// # Quick Start
//
//	cfg := glyphatlas.DefaultConfig()
//	atlas, err := glyphatlas.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rast, _ := raster.NewFace(goregular.TTF)
//	rast.RegisterStyle(0, raster.Style{Size: 16})
//
//	p, err := atlas.GetGlyph(rast, "a", 0)
//	// p.Page, p.X, p.Y, p.Width, p.Height locate the cached bitmap.
//
// # Behavior
//
// Lookups hit a key→Placement map; on a miss the Atlas invokes the caller's
// Rasterizer, places the resulting bitmap on the most recent page, and opens
// a new page when that page is full. Placements are never moved or evicted,
// so a returned Placement stays valid for the lifetime of the atlas.
//
// Packing is greedy and single-pass: there is no repacking, no backtracking
// and no defragmentation. A bitmap larger than the configured page size can
// never be placed and fails fatally with GlyphTooLargeError.
//
// # Coordinate System
//
// Pages use standard raster coordinates: origin (0,0) at top-left,
// X increases right, Y increases down.
package glyphatlas
