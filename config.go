package glyphatlas

import "github.com/gogpu/glyphatlas/surface"

// Config holds atlas configuration.
type Config struct {
	// PageWidth and PageHeight are the pixel dimensions of every page the
	// atlas creates. Pages may be square or rectangular.
	// Default: 1024 x 1024.
	PageWidth  int
	PageHeight int

	// Padding between glyphs to prevent sampling bleed.
	// Default: 1.
	Padding int

	// NewAllocator selects the bin-packing strategy for new pages.
	// Default: ShelfAllocators().
	NewAllocator AllocatorFunc

	// NewSurface creates the pixel surface backing a new page.
	// Default: surface.NewImage.
	NewSurface surface.New

	// MaxPages limits the number of pages. 0 means unbounded, the
	// default: the atlas grows for every distinct glyph it is asked to
	// hold, which an adversarial unique-glyph workload can exploit.
	MaxPages int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PageWidth:  1024,
		PageHeight: 1024,
		Padding:    1,
	}
}

// maxPageDim bounds page dimensions to keep a page addressable as a
// single GPU texture on common hardware.
const maxPageDim = 16384

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PageWidth < 1 {
		return &ConfigError{Field: "PageWidth", Reason: "must be positive"}
	}
	if c.PageWidth > maxPageDim {
		return &ConfigError{Field: "PageWidth", Reason: "must be at most 16384"}
	}
	if c.PageHeight < 1 {
		return &ConfigError{Field: "PageHeight", Reason: "must be positive"}
	}
	if c.PageHeight > maxPageDim {
		return &ConfigError{Field: "PageHeight", Reason: "must be at most 16384"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.PageWidth || c.Padding >= c.PageHeight {
		return &ConfigError{Field: "Padding", Reason: "must be less than the page dimensions"}
	}
	if c.MaxPages < 0 {
		return &ConfigError{Field: "MaxPages", Reason: "must be non-negative"}
	}
	return nil
}

// withDefaults fills in the factory fields left nil by the caller.
func (c Config) withDefaults() Config {
	if c.NewAllocator == nil {
		c.NewAllocator = ShelfAllocators()
	}
	if c.NewSurface == nil {
		c.NewSurface = surface.NewImage
	}
	return c
}
