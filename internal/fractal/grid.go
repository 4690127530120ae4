package fractal

// DefaultCharAspect compensates for terminal cells being about twice as
// tall as they are wide.
const DefaultCharAspect = 0.5

// Geometry is the drawable character grid. Columns and Rows must be >= 1.
type Geometry struct {
	Columns    int
	Rows       int
	CharAspect float64
}

// AspectRatio scales the real axis so the plane is not stretched by
// non-square cells.
func (g Geometry) AspectRatio() float64 {
	return float64(g.Columns) / float64(g.Rows) * g.CharAspect
}

// Grid holds one real coordinate per column and one imaginary coordinate per row.
type Grid struct {
	Real []float64
	Imag []float64
}

// ComputeGrid maps every column and row of geom to the complex plane,
// centred on (centerX, centerY) and scaled by 1/zoom.
func ComputeGrid(geom Geometry, centerX, centerY, zoom float64) Grid {
	var g Grid
	g.Fill(geom, centerX, centerY, zoom)
	return g
}

// Fill recomputes g in place, reusing its slices when the geometry is unchanged.
func (g *Grid) Fill(geom Geometry, centerX, centerY, zoom float64) {
	if len(g.Real) != geom.Columns {
		g.Real = make([]float64, geom.Columns)
	}
	if len(g.Imag) != geom.Rows {
		g.Imag = make([]float64, geom.Rows)
	}

	halfW := float64(geom.Columns) / 2
	halfH := float64(geom.Rows) / 2
	invZoom := 1 / zoom
	aspect := geom.AspectRatio()

	for x := range g.Real {
		g.Real[x] = (float64(x)-halfW)/halfW*invZoom*aspect + centerX
	}
	for y := range g.Imag {
		g.Imag[y] = (float64(y)-halfH)/halfH*invZoom + centerY
	}
}
