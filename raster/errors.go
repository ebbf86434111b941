package raster

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("raster: empty font data")

// UnknownStyleError is returned when a glyph key references a style id
// that was never registered with the rasterizer.
type UnknownStyleError struct {
	Style uint32
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("raster: unknown style id %d", e.Style)
}
