package render

import "github.com/san-kum/mandelterm/internal/fractal"

// StatusRows are kept free below the fractal for the status line.
const StatusRows = 2

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Resolve substitutes the fallback for any unknown (non-positive) dimension.
// It reports whether a substitution happened.
func (s Size) Resolve(fallback Size) (Size, bool) {
	substituted := false
	if s.Width <= 0 {
		s.Width = fallback.Width
		substituted = true
	}
	if s.Height <= 0 {
		s.Height = fallback.Height
		substituted = true
	}
	return s, substituted
}

// Geometry derives the fractal grid from a resolved terminal size:
// columns = max(width, 1), rows = max(height-StatusRows, 1).
func (s Size) Geometry(charAspect float64) fractal.Geometry {
	return fractal.Geometry{
		Columns:    max(s.Width, 1),
		Rows:       max(s.Height-StatusRows, 1),
		CharAspect: charAspect,
	}
}
