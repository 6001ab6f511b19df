package canny

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sector boundaries, in degrees, quantizing a gradient direction in
// [0, 180) to one of four discrete orientations.
const (
	sectorDiag1 = 22.5  // below: horizontal neighbors
	sectorVert  = 67.5  // below: anti-diagonal neighbors
	sectorDiag2 = 112.5 // below: vertical neighbors
	sectorHoriz = 157.5 // below: main-diagonal neighbors, above: horizontal again
)

// neighborOffsets lists the {dy, dx} pairs of the two pixels compared
// against, per sector.
var neighborOffsets = [4][2][2]int{
	{{0, 1}, {0, -1}},   // horizontal
	{{1, -1}, {-1, 1}},  // anti-diagonal
	{{1, 0}, {-1, 0}},   // vertical
	{{-1, -1}, {1, 1}},  // main diagonal
}

// sectorOf maps an orientation angle in radians to a neighborOffsets index.
func sectorOf(direction float64) int {
	deg := direction * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < sectorDiag1 || deg >= sectorHoriz:
		return 0
	case deg < sectorVert:
		return 1
	case deg < sectorDiag2:
		return 2
	default:
		return 3
	}
}

// Suppress thins the magnitude grid by zeroing every pixel that is not
// a local maximum along its gradient direction. A pixel survives only
// when its magnitude is >= both neighbors selected by its sector; ties
// survive, which keeps plateau ridges intact. The outer 1-pixel ring
// is never evaluated and stays zero, since the comparison needs a full
// 3x3 neighborhood.
func Suppress(g GradientResult) *mat.Dense {
	assertSameDims("suppress", g.Magnitude, g.Direction)
	rows, cols := g.Magnitude.Dims()
	dst := mat.NewDense(rows, cols, nil)

	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			offs := neighborOffsets[sectorOf(g.Direction.At(y, x))]
			m := g.Magnitude.At(y, x)
			q := g.Magnitude.At(y+offs[0][0], x+offs[0][1])
			r := g.Magnitude.At(y+offs[1][0], x+offs[1][1])

			if m >= q && m >= r {
				dst.Set(y, x, m)
			}
		}
	}
	return dst
}
