package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphatlas package.
var (
	// ErrInvalidBitmap is returned when a rasterizer produces a bitmap with
	// a non-positive width or height. This is a programming error in the
	// rasterizer, not a recoverable condition.
	ErrInvalidBitmap = errors.New("glyphatlas: bitmap dimensions must be positive")

	// ErrNilRasterizer is returned when Get is called with a nil rasterizer.
	ErrNilRasterizer = errors.New("glyphatlas: rasterizer is nil")

	// ErrAllocationFailed is returned when a fresh page rejects a bitmap
	// that passed the size check. This indicates an allocator bug.
	ErrAllocationFailed = errors.New("glyphatlas: failed to allocate glyph in fresh page")
)

// GlyphTooLargeError is returned when a bitmap exceeds the page's fixed
// pixel dimensions in either axis. No page of the atlas can ever hold it,
// so the caller must not retry with the same atlas configuration.
type GlyphTooLargeError struct {
	Width, Height         int
	PageWidth, PageHeight int
}

func (e *GlyphTooLargeError) Error() string {
	return fmt.Sprintf("glyphatlas: glyph %dx%d exceeds page size %dx%d",
		e.Width, e.Height, e.PageWidth, e.PageHeight)
}

// PagesExhaustedError is returned when Config.MaxPages is set and every
// page is full.
type PagesExhaustedError struct {
	MaxPages int
}

func (e *PagesExhaustedError) Error() string {
	return fmt.Sprintf("glyphatlas: all %d pages are full", e.MaxPages)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config." + e.Field + ": " + e.Reason
}
