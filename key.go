package glyphatlas

import "golang.org/x/text/unicode/norm"

// GlyphKey uniquely identifies a cached bitmap's intended visual content.
// Two lookups with an equal key always resolve to the same Placement once
// inserted.
type GlyphKey struct {
	// Chars is the character sequence the bitmap renders. Usually a single
	// character, but ligatures and combining sequences span several runes.
	Chars string

	// Style identifies the visual style (font, size, foreground). The
	// mapping from id to concrete style parameters belongs to the
	// rasterizer, not the cache.
	Style uint32
}

// NewGlyphKey builds a key with Chars canonicalized to Unicode NFC, so
// composed and decomposed spellings of the same sequence share one cache
// entry.
func NewGlyphKey(chars string, style uint32) GlyphKey {
	return GlyphKey{
		Chars: norm.NFC.String(chars),
		Style: style,
	}
}
