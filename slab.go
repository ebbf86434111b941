package glyphatlas

import "fmt"

// SlabAllocator implements fixed-cell rectangle packing.
//
// The page is divided into a grid of standard-size cells ("slabs").
// Bitmaps that fit a standard cell take the first free cell in row-major
// order, which is predictable and cache-friendly when most glyphs share
// near-identical dimensions (monospace fonts). A bitmap exceeding the
// standard cell in either dimension gets a dedicated region carved from
// the grid, rounded up to whole cells in each dimension.
//
// Carved regions are never returned to the free list: nothing in the
// atlas frees glyphs, so reuse is unreachable.
//
// The standard cell size is either configured up front or inferred from
// the first bitmap placed; once set it is fixed for the page's lifetime.
// When the cell size does not divide the page evenly, oversized regions
// may spill into the margin beyond the last whole cell, so a fresh page
// holds any bitmap that fits the page dimensions.
type SlabAllocator struct {
	width   int // Total width of the page
	height  int // Total height of the page
	padding int // Padding between cells

	cellW int // Standard cell width (0 until inferred)
	cellH int // Standard cell height (0 until inferred)
	cols  int
	rows  int
	used  []bool // Row-major cell occupancy
	next  int    // First possibly-free cell; cells are never freed

	count     int // Successful allocations
	usedCells int
	oversized int // Oversized regions carved
	usedArea  int
}

// NewSlabAllocator creates a slab allocator for a page of the given pixel
// dimensions. cellW and cellH set the standard cell size; pass 0, 0 to
// infer it from the first bitmap placed.
func NewSlabAllocator(width, height, padding, cellW, cellH int) *SlabAllocator {
	a := &SlabAllocator{
		width:   width,
		height:  height,
		padding: padding,
	}
	if cellW > 0 && cellH > 0 {
		a.initGrid(cellW, cellH)
	}
	return a
}

// initGrid fixes the standard cell size and lays out the cell grid.
// A cell larger than the page is clamped to it, so a validated page
// always carries at least one cell.
func (a *SlabAllocator) initGrid(cellW, cellH int) {
	if cellW+a.padding > a.width {
		cellW = a.width - a.padding
	}
	if cellH+a.padding > a.height {
		cellH = a.height - a.padding
	}
	a.cellW = cellW
	a.cellH = cellH
	a.cols = a.width / (cellW + a.padding)
	a.rows = a.height / (cellH + a.padding)
	if a.cols > 0 && a.rows > 0 {
		a.used = make([]bool, a.cols*a.rows)
	}
}

// Allocate finds space for a w x h rectangle.
func (a *SlabAllocator) Allocate(w, h int) (Allocation, bool) {
	if w <= 0 || h <= 0 {
		return Allocation{}, false
	}

	if a.cellW == 0 {
		a.initGrid(w, h)
	}
	if a.cols <= 0 || a.rows <= 0 {
		return Allocation{}, false
	}

	if w <= a.cellW && h <= a.cellH {
		return a.allocateStandard(w, h)
	}
	return a.allocateOversized(w, h)
}

// allocateStandard takes the next free standard-size cell in row-major order.
func (a *SlabAllocator) allocateStandard(w, h int) (Allocation, bool) {
	for a.next < len(a.used) && a.used[a.next] {
		a.next++
	}
	if a.next >= len(a.used) {
		return Allocation{}, false
	}

	idx := a.next
	a.used[idx] = true
	a.next++
	a.usedCells++

	pitchX := a.cellW + a.padding
	pitchY := a.cellH + a.padding
	x := (idx % a.cols) * pitchX
	y := (idx / a.cols) * pitchY

	return a.place(x, y, w, h), true
}

// allocateOversized carves a dedicated region of whole cells large enough
// for the bitmap from the first contiguous free block in row-major order.
func (a *SlabAllocator) allocateOversized(w, h int) (Allocation, bool) {
	pitchX := a.cellW + a.padding
	pitchY := a.cellH + a.padding

	// Cells needed so that the spanned pixel area covers w x h. A region
	// needing more columns or rows than the grid holds can still fit by
	// spilling into the margin beyond the last whole cell; it then starts
	// at the first cell of that axis and consumes every cell it spans.
	cw := (w + a.padding + pitchX - 1) / pitchX
	ch := (h + a.padding + pitchY - 1) / pitchY
	if cw > a.cols {
		if w+a.padding > a.width {
			return Allocation{}, false
		}
		cw = a.cols
	}
	if ch > a.rows {
		if h+a.padding > a.height {
			return Allocation{}, false
		}
		ch = a.rows
	}

	for row := 0; row+ch <= a.rows; row++ {
		for col := 0; col+cw <= a.cols; col++ {
			if !a.regionFree(col, row, cw, ch) {
				continue
			}
			a.markRegion(col, row, cw, ch)
			a.oversized++
			return a.place(col*pitchX, row*pitchY, w, h), true
		}
	}
	return Allocation{}, false
}

func (a *SlabAllocator) regionFree(col, row, cw, ch int) bool {
	for r := row; r < row+ch; r++ {
		for c := col; c < col+cw; c++ {
			if a.used[r*a.cols+c] {
				return false
			}
		}
	}
	return true
}

func (a *SlabAllocator) markRegion(col, row, cw, ch int) {
	for r := row; r < row+ch; r++ {
		for c := col; c < col+cw; c++ {
			a.used[r*a.cols+c] = true
		}
	}
	a.usedCells += cw * ch
}

func (a *SlabAllocator) place(x, y, w, h int) Allocation {
	alloc := Allocation{Index: a.count, X: x, Y: y, Width: w, Height: h}
	a.count++
	a.usedArea += w * h
	return alloc
}

// Count returns the number of successful allocations.
func (a *SlabAllocator) Count() int {
	return a.count
}

// CellSize returns the standard cell dimensions, or (0, 0) if the size has
// not been inferred yet.
func (a *SlabAllocator) CellSize() (w, h int) {
	return a.cellW, a.cellH
}

// Capacity returns the total number of standard cells in the grid, or 0 if
// the cell size has not been fixed yet.
func (a *SlabAllocator) Capacity() int {
	return a.cols * a.rows
}

// UsedCells returns the number of occupied cells, counting each cell
// covered by an oversized region.
func (a *SlabAllocator) UsedCells() int {
	return a.usedCells
}

// Utilization returns the fraction of the page area used.
func (a *SlabAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// Summary returns a one-line utilization description.
func (a *SlabAllocator) Summary() string {
	return fmt.Sprintf("slab: %d glyphs, %d/%d cells used (%d oversized), %.1f%% area",
		a.count, a.usedCells, a.Capacity(), a.oversized, a.Utilization()*100)
}

var _ Allocator = (*SlabAllocator)(nil)
