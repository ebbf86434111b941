package raster

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
)

func newTestFace(t *testing.T) *Face {
	t.Helper()
	f, err := NewFace(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	if err := f.RegisterStyle(0, Style{Size: 16}); err != nil {
		t.Fatalf("RegisterStyle: %v", err)
	}
	return f
}

func TestNewFace_EmptyData(t *testing.T) {
	if _, err := NewFace(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("expected ErrEmptyFontData, got %v", err)
	}
}

func TestNewFace_BadData(t *testing.T) {
	if _, err := NewFace([]byte("not a font")); err == nil {
		t.Error("expected parse error for junk data")
	}
}

func TestFace_UnknownStyle(t *testing.T) {
	f := newTestFace(t)

	_, err := f.Rasterize(glyphatlas.NewGlyphKey("A", 7))
	var unknown *UnknownStyleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownStyleError, got %v", err)
	}
	if unknown.Style != 7 {
		t.Errorf("expected style 7 in error, got %d", unknown.Style)
	}
}

func TestFace_Rasterize(t *testing.T) {
	f := newTestFace(t)

	bm, err := f.Rasterize(glyphatlas.NewGlyphKey("A", 0))
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if bm.Width <= 0 || bm.Height <= 0 {
		t.Fatalf("expected positive dimensions, got %dx%d", bm.Width, bm.Height)
	}
	if bm.Mask.Rect.Dx() != bm.Width || bm.Mask.Rect.Dy() != bm.Height {
		t.Errorf("mask bounds %v disagree with %dx%d",
			bm.Mask.Rect, bm.Width, bm.Height)
	}

	var ink bool
	for _, p := range bm.Mask.Pix {
		if p != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("expected rasterized 'A' to contain ink")
	}

	// An 'A' at 16pt sits entirely above the baseline.
	if bm.OriginY <= 0 {
		t.Errorf("expected origin below the glyph top, got OriginY=%d", bm.OriginY)
	}
}

func TestFace_BlankSequences(t *testing.T) {
	f := newTestFace(t)

	for _, chars := range []string{"", " ", "   "} {
		bm, err := f.Rasterize(glyphatlas.NewGlyphKey(chars, 0))
		if err != nil {
			t.Fatalf("Rasterize(%q): %v", chars, err)
		}
		if bm.Width != 1 || bm.Height != 1 {
			t.Errorf("Rasterize(%q): expected 1x1 blank, got %dx%d",
				chars, bm.Width, bm.Height)
		}
		if bm.Mask.Pix[0] != 0 {
			t.Errorf("Rasterize(%q): expected transparent mask", chars)
		}
	}
}

func TestFace_FeedsAtlas(t *testing.T) {
	f := newTestFace(t)

	cfg := glyphatlas.DefaultConfig()
	cfg.PageWidth = 128
	cfg.PageHeight = 128
	atlas, err := glyphatlas.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text := "Hello, World!"
	for _, r := range text {
		if _, err := atlas.GetGlyph(f, string(r), 0); err != nil {
			t.Fatalf("GetGlyph(%q): %v", r, err)
		}
	}

	// Repeated characters collapse into shared entries.
	if got := atlas.GlyphCount(); got >= len(text) {
		t.Errorf("expected deduplicated count below %d, got %d", len(text), got)
	}
}

func BenchmarkFace_Rasterize(b *testing.B) {
	f, err := NewFace(goregular.TTF)
	if err != nil {
		b.Fatalf("NewFace: %v", err)
	}
	if err := f.RegisterStyle(0, Style{Size: 16}); err != nil {
		b.Fatalf("RegisterStyle: %v", err)
	}
	key := glyphatlas.NewGlyphKey("g", 0)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Rasterize(key); err != nil {
			b.Fatal(err)
		}
	}
}
