package glyphatlas

// Allocation is the result of a successful allocator placement.
type Allocation struct {
	// Index is a zero-based, strictly increasing counter of successful
	// allocations within one allocator. It is independent of position and
	// exists for diagnostics and ordering.
	Index int

	// X, Y, Width, Height is the rectangle assigned inside the page.
	X, Y, Width, Height int
}

// Allocator owns placement state for exactly one page's pixel grid.
// Given a bitmap's dimensions it either returns a placement within the
// page or reports that the page has no room; it never moves or frees
// earlier placements.
//
// Allocators are not safe for concurrent use. The Atlas serializes all
// calls through its single placement path.
type Allocator interface {
	// Allocate finds space for a w x h rectangle. It returns the
	// allocation and true on success, or a zero Allocation and false when
	// the page cannot hold the rectangle.
	Allocate(w, h int) (Allocation, bool)

	// Count returns the number of successful allocations so far.
	Count() int

	// Utilization returns the fraction of the page area covered by
	// allocations, in [0, 1].
	Utilization() float64

	// Summary returns a one-line human-readable utilization description
	// for operator diagnostics.
	Summary() string
}

// AllocatorFunc constructs a fresh Allocator for a new page of the given
// pixel dimensions. The allocator strategies form a closed set: use
// ShelfAllocators or SlabAllocators.
type AllocatorFunc func(width, height, padding int) Allocator

// ShelfAllocators returns a factory producing shelf (row-based) allocators.
func ShelfAllocators() AllocatorFunc {
	return func(width, height, padding int) Allocator {
		return NewShelfAllocator(width, height, padding)
	}
}

// SlabAllocators returns a factory producing slab (fixed-cell) allocators.
// cellW and cellH set the standard cell size; pass 0, 0 to infer the cell
// size from the first bitmap placed on each page.
func SlabAllocators(cellW, cellH int) AllocatorFunc {
	return func(width, height, padding int) Allocator {
		return NewSlabAllocator(width, height, padding, cellW, cellH)
	}
}
