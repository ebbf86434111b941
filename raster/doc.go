// Package raster provides Rasterizer implementations for the glyph atlas.
//
// Face draws character sequences with golang.org/x/image's opentype
// machinery. It is simple and fast but applies no shaping: no ligatures,
// no kerning, no complex scripts.
//
// Shaped runs HarfBuzz shaping via go-text/typesetting first and then
// fills the shaped glyph outlines with x/image/vector. Use it when the
// cached sequences benefit from ligatures, kerning or complex-script
// shaping.
//
// Both map a GlyphKey's Style id to registered style parameters; looking
// up an unregistered style fails with UnknownStyleError. Both always
// return bitmaps with strictly positive dimensions: an empty or
// whitespace-only sequence yields a 1x1 transparent mask.
package raster
