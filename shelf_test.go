package glyphatlas

import "testing"

func TestShelfAllocator_Basic(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	alloc, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first glyph")
	}
	if alloc.X != 0 || alloc.Y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", alloc.X, alloc.Y)
	}
	if alloc.Index != 0 {
		t.Errorf("expected index 0, got %d", alloc.Index)
	}

	alloc, ok = a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second glyph")
	}
	if alloc.X != 20 || alloc.Y != 0 {
		t.Errorf("expected (20,0), got (%d,%d)", alloc.X, alloc.Y)
	}
	if alloc.Index != 1 {
		t.Errorf("expected index 1, got %d", alloc.Index)
	}
}

func TestShelfAllocator_Padding(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	_, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first glyph")
	}
	alloc, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second glyph")
	}
	if alloc.X != 22 || alloc.Y != 0 { // 20 + 2 padding
		t.Errorf("expected (22,0), got (%d,%d)", alloc.X, alloc.Y)
	}
}

// The shelf trace from a 5x5 page: the 4th glyph wraps because only 1px
// of width remains, and the new shelf starts at y=2, the height of the
// tallest glyph on the first shelf.
func TestShelfAllocator_PackingTrace(t *testing.T) {
	a := NewShelfAllocator(5, 5, 0)

	sizes := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 1}, {2, 1}, {1, 1}, {1, 1}}
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 2}, {2, 2}, {4, 2}, {0, 3}}

	for i, size := range sizes {
		alloc, ok := a.Allocate(size[0], size[1])
		if !ok {
			t.Fatalf("glyph %d (%dx%d): no room", i, size[0], size[1])
		}
		if alloc.X != want[i][0] || alloc.Y != want[i][1] {
			t.Errorf("glyph %d: expected (%d,%d), got (%d,%d)",
				i, want[i][0], want[i][1], alloc.X, alloc.Y)
		}
		if alloc.Index != i {
			t.Errorf("glyph %d: expected index %d, got %d", i, i, alloc.Index)
		}
	}
}

func TestShelfAllocator_RetroactiveHeightGrowth(t *testing.T) {
	a := NewShelfAllocator(10, 10, 0)

	// Short glyph first, then a taller one on the same shelf.
	if _, ok := a.Allocate(2, 1); !ok {
		t.Fatal("failed to allocate short glyph")
	}
	if _, ok := a.Allocate(2, 4); !ok {
		t.Fatal("failed to allocate tall glyph")
	}

	// The next shelf must start below the tallest occupant, not the first.
	a.cursorX = a.width // force a wrap
	alloc, ok := a.Allocate(2, 2)
	if !ok {
		t.Fatal("failed to allocate on new shelf")
	}
	if alloc.Y != 4 {
		t.Errorf("expected new shelf at y=4, got y=%d", alloc.Y)
	}
}

func TestShelfAllocator_NoRoom(t *testing.T) {
	a := NewShelfAllocator(4, 4, 0)

	// Single item wider than the page.
	if _, ok := a.Allocate(5, 1); ok {
		t.Error("expected no room for over-wide glyph")
	}

	// Single item taller than the page.
	if _, ok := a.Allocate(1, 5); ok {
		t.Error("expected no room for over-tall glyph")
	}

	// Fill the page with 2x2 glyphs, then one more.
	for i := 0; i < 4; i++ {
		if _, ok := a.Allocate(2, 2); !ok {
			t.Fatalf("glyph %d: no room", i)
		}
	}
	if _, ok := a.Allocate(2, 2); ok {
		t.Error("expected exhausted page to reject allocation")
	}
}

func TestShelfAllocator_VerticalExhaustionOnOpenShelf(t *testing.T) {
	a := NewShelfAllocator(10, 4, 0)

	if _, ok := a.Allocate(2, 3); !ok {
		t.Fatal("failed to allocate first glyph")
	}
	// Fits horizontally but would grow the shelf past the page bottom,
	// and a new shelf would start even lower.
	if _, ok := a.Allocate(2, 5); ok {
		t.Error("expected no room for glyph taller than the page remainder")
	}
}

func TestShelfAllocator_ZeroSizeRejected(t *testing.T) {
	a := NewShelfAllocator(10, 10, 0)
	if _, ok := a.Allocate(0, 1); ok {
		t.Error("expected zero-width allocation to fail")
	}
	if _, ok := a.Allocate(1, 0); ok {
		t.Error("expected zero-height allocation to fail")
	}
}

func TestShelfAllocator_Diagnostics(t *testing.T) {
	a := NewShelfAllocator(10, 10, 0)

	if a.Utilization() != 0 {
		t.Errorf("expected zero utilization, got %f", a.Utilization())
	}
	if a.UsedRows() != 0 {
		t.Errorf("expected zero used rows, got %d", a.UsedRows())
	}

	for i := 0; i < 5; i++ {
		if _, ok := a.Allocate(2, 2); !ok {
			t.Fatalf("glyph %d: no room", i)
		}
	}
	if a.Count() != 5 {
		t.Errorf("expected count 5, got %d", a.Count())
	}
	if a.ShelfCount() != 1 {
		t.Errorf("expected 1 shelf, got %d", a.ShelfCount())
	}
	if a.UsedRows() != 2 {
		t.Errorf("expected 2 used rows, got %d", a.UsedRows())
	}
	want := float64(5*2*2) / 100
	if a.Utilization() != want {
		t.Errorf("expected utilization %f, got %f", want, a.Utilization())
	}
	if a.Summary() == "" {
		t.Error("expected non-empty summary")
	}
}

func BenchmarkShelfAllocator_Allocate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := NewShelfAllocator(1024, 1024, 1)
		for {
			if _, ok := a.Allocate(12, 16); !ok {
				break
			}
		}
	}
}
