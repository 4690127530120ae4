package fractal

const (
	DefaultMaxIterations = 1000

	// escapeRadiusSq is |z|² at which a point is known to diverge.
	escapeRadiusSq = 4.0
)

// EscapeIterations iterates z = z² + c from z = 0 and returns how many
// further steps keep |z|² below 4, capped at maxIter. The first step from
// zero always lands on c itself, so a point already outside the radius
// returns 0 and maxIter means the point is presumed to be inside the set.
func EscapeIterations(cr, ci float64, maxIter int) int {
	zr, zi := cr, ci
	n := 0
	for n < maxIter {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 >= escapeRadiusSq {
			break
		}
		zr, zi = step(zr, zi, zr2, zi2, cr, ci)
		n++
	}
	return n
}

// step returns z² + c given z and its precomputed squares.
func step(zr, zi, zr2, zi2, cr, ci float64) (float64, float64) {
	return zr2 - zi2 + cr, 2*zr*zi + ci
}
