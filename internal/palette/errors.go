package palette

import "errors"

var (
	// ErrEmptyPalette indicates a ramp was requested with no glyphs.
	ErrEmptyPalette = errors.New("palette: no glyphs")

	// ErrWideGlyph indicates a glyph that does not occupy exactly one terminal cell.
	ErrWideGlyph = errors.New("palette: glyph is not single-width")
)
