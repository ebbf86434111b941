package glyphatlas

import "fmt"

// ShelfAllocator implements row-based rectangle packing.
//
// The algorithm keeps exactly one open shelf: a horizontal strip whose
// height is the tallest item placed in it so far. New items are appended
// left-to-right on the open shelf; when the remaining width is too small
// the shelf is closed and a new one starts directly below it. A shelf's
// height can grow retroactively as taller items are appended, so a row is
// not closed off by the height of its first occupant.
//
// Placement is O(1) with no backtracking: closed shelves are never
// revisited, which favors low latency over packing optimality.
type ShelfAllocator struct {
	width   int // Total width of the page
	height  int // Total height of the page
	padding int // Padding between glyphs

	shelfY  int // Y position of the open shelf
	shelfH  int // Height of the open shelf (tallest item so far)
	cursorX int // Next free X position on the open shelf

	shelves  int // Number of shelves opened
	count    int // Successful allocations
	usedArea int
}

// NewShelfAllocator creates a shelf allocator for a page of the given
// pixel dimensions. padding is inserted after each item in both axes.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
	}
}

// Allocate finds space for a w x h rectangle.
func (a *ShelfAllocator) Allocate(w, h int) (Allocation, bool) {
	if w <= 0 || h <= 0 {
		return Allocation{}, false
	}

	pw := w + a.padding
	ph := h + a.padding

	// Items wider than the page can never fit on any shelf.
	if pw > a.width {
		return Allocation{}, false
	}

	// Try the open shelf. The vertical check matters when the item would
	// grow the shelf past the page bottom: a new shelf starts even lower,
	// so failing here means the page is exhausted for this height.
	if a.cursorX+pw <= a.width && a.shelfY+ph <= a.height {
		alloc := a.place(a.cursorX, a.shelfY, w, h)
		a.cursorX += pw
		if h > a.shelfH {
			a.shelfH = h
		}
		if a.shelves == 0 {
			a.shelves = 1
		}
		return alloc, true
	}

	// Close the shelf and start a new one below it.
	newY := a.shelfY + a.shelfH
	if a.shelfH > 0 {
		newY += a.padding
	}
	if newY+ph > a.height {
		return Allocation{}, false
	}

	a.shelfY = newY
	a.shelfH = h
	a.cursorX = pw
	a.shelves++

	return a.place(0, newY, w, h), true
}

func (a *ShelfAllocator) place(x, y, w, h int) Allocation {
	alloc := Allocation{Index: a.count, X: x, Y: y, Width: w, Height: h}
	a.count++
	a.usedArea += w * h
	return alloc
}

// Count returns the number of successful allocations.
func (a *ShelfAllocator) Count() int {
	return a.count
}

// ShelfCount returns the number of shelves opened so far.
func (a *ShelfAllocator) ShelfCount() int {
	return a.shelves
}

// UsedRows returns the number of pixel rows covered by shelves.
func (a *ShelfAllocator) UsedRows() int {
	if a.count == 0 {
		return 0
	}
	return a.shelfY + a.shelfH
}

// Utilization returns the fraction of the page area used.
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// Summary returns a one-line utilization description.
func (a *ShelfAllocator) Summary() string {
	return fmt.Sprintf("shelf: %d glyphs in %d shelves, %d/%d rows used, %.1f%% area",
		a.count, a.shelves, a.UsedRows(), a.height, a.Utilization()*100)
}

var _ Allocator = (*ShelfAllocator)(nil)
