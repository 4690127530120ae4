// Package fractal maps terminal cells onto the complex plane and evaluates
// the Mandelbrot escape-time function.
//
//   - [Geometry]: the character grid being drawn
//   - [ComputeGrid]: per-column real and per-row imaginary coordinates
//   - [EscapeIterations]: iteration count before |z|² reaches 4
//
// # Example
//
//	geom := fractal.Geometry{Columns: 80, Rows: 22, CharAspect: 0.5}
//	grid := fractal.ComputeGrid(geom, -0.5, 0, 1)
//	n := fractal.EscapeIterations(grid.Real[40], grid.Imag[11], fractal.DefaultMaxIterations)
//
// Everything in this package is pure and allocation-free apart from the
// coordinate slices returned by [ComputeGrid].
package fractal
