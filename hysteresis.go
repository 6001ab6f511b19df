package canny

import (
	"image"
	"image/color"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/mat"
)

// edgeOn is the mask value of an accepted edge pixel.
const edgeOn uint8 = 255

// adjacent8 lists the {dy, dx} offsets of the eight surrounding pixels.
var adjacent8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Threshold classifies the suppressed magnitudes against two ratios of
// the global maximum and grows the accepted set through weak pixels.
//
// A pixel is strong when its value reaches highRatio times the global
// maximum, weak when it reaches lowRatio times the maximum but not the
// high bar, and discarded otherwise. Strong pixels seed a flood fill
// that promotes every interior weak pixel 8-connected to the accepted
// set. Connectivity to a strong seed is the only promotion criterion,
// so the queue order does not affect the final mask; the fill reaches
// the same fixed point a repeated full-grid scan would.
//
// A grid whose maximum is zero carries no gradient signal at all and
// yields an empty mask.
func Threshold(suppressed *mat.Dense, lowRatio, highRatio float64) *image.Gray {
	rows, cols := suppressed.Dims()
	mask := image.NewGray(image.Rect(0, 0, cols, rows))

	maxVal := mat.Max(suppressed)
	if maxVal == 0 {
		return mask
	}
	high := highRatio * maxVal
	low := lowRatio * maxVal

	weak := mapset.NewThreadUnsafeSet[image.Point]()
	var queue []image.Point

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := suppressed.At(y, x)
			switch {
			case v >= high:
				mask.SetGray(x, y, color.Gray{Y: edgeOn})
				queue = append(queue, image.Pt(x, y))
			case v >= low:
				weak.Add(image.Pt(x, y))
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, d := range adjacent8 {
			ny, nx := p.Y+d[0], p.X+d[1]
			// Growth never promotes the outer ring; the suppression
			// stage left it without a full neighborhood evaluation.
			if ny < 1 || ny >= rows-1 || nx < 1 || nx >= cols-1 {
				continue
			}
			n := image.Pt(nx, ny)
			if weak.Contains(n) && mask.GrayAt(nx, ny).Y == 0 {
				mask.SetGray(nx, ny, color.Gray{Y: edgeOn})
				queue = append(queue, n)
			}
		}
	}

	return mask
}
