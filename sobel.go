package canny

import "gonum.org/v1/gonum/mat"

// Separable factors of the 3x3 Sobel operator: a smoothing pass across
// the derivative axis and a central-difference pass along it.
var (
	smoothTaps = [3]float64{1, 2, 1}
	derivTaps  = [3]float64{-1, 0, 1}
)

// tensor holds the per-pixel structure tensor [[gxx, gxy], [gxy, gyy]]
// as three grids. It lives only between the gradient estimator and the
// magnitude/direction resolver.
type tensor struct {
	gxx, gyy, gxy *mat.Dense
}

// convolveRows correlates a 3-tap kernel along each row with the same
// reflect-101 boundary extension the smoothing stage uses.
func convolveRows(src *mat.Dense, taps [3]float64) *mat.Dense {
	rows, cols := src.Dims()
	dst := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for k, w := range taps {
				acc += w * src.At(y, reflect101(x+k-1, cols))
			}
			dst.Set(y, x, acc)
		}
	}
	return dst
}

// convolveCols correlates a 3-tap kernel along each column.
func convolveCols(src *mat.Dense, taps [3]float64) *mat.Dense {
	rows, cols := src.Dims()
	dst := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for k, w := range taps {
				acc += w * src.At(reflect101(y+k-1, rows), x)
			}
			dst.Set(y, x, acc)
		}
	}
	return dst
}

// sobelDx computes the horizontal derivative: vertical smoothing
// followed by a horizontal central difference. The difference pass
// subtracts equal taps on constant input, so flat regions come out as
// an exact zero rather than a rounding residual.
func sobelDx(src *mat.Dense) *mat.Dense {
	return convolveRows(convolveCols(src, smoothTaps), derivTaps)
}

// sobelDy computes the vertical derivative, the transposed factoring.
func sobelDy(src *mat.Dense) *mat.Dense {
	return convolveCols(convolveRows(src, smoothTaps), derivTaps)
}

// structureTensor computes directional derivatives per channel and
// accumulates them into a single tensor:
//
//	gxx = Σ dx², gyy = Σ dy², gxy = Σ dx·dy
//
// For a single channel this is the plain Sobel tensor; for three
// channels the cross terms preserve orientation correlation between
// the planes, which averaging per-channel edges would lose.
func structureTensor(channels []*mat.Dense) tensor {
	rows, cols := channels[0].Dims()
	t := tensor{
		gxx: mat.NewDense(rows, cols, nil),
		gyy: mat.NewDense(rows, cols, nil),
		gxy: mat.NewDense(rows, cols, nil),
	}

	for _, ch := range channels {
		assertSameDims("gradient", channels[0], ch)
		dx := sobelDx(ch)
		dy := sobelDy(ch)

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				gx := dx.At(y, x)
				gy := dy.At(y, x)
				t.gxx.Set(y, x, t.gxx.At(y, x)+gx*gx)
				t.gyy.Set(y, x, t.gyy.At(y, x)+gy*gy)
				t.gxy.Set(y, x, t.gxy.At(y, x)+gx*gy)
			}
		}
	}
	return t
}
