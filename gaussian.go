package canny

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// minKernelSize is the smallest usable Gaussian kernel side length.
const minKernelSize = 3

// KernelSize returns the side length of the Gaussian kernel for sigma.
// The size grows with sigma (6σ+1 covers ≈3σ of the bell on each side),
// is forced odd so the kernel stays centered, and never drops below 3
// so the kernel is well defined as σ→0.
func KernelSize(sigma float64) int {
	return Max(minKernelSize, int(6*sigma+1)|1)
}

// gaussianKernel builds a normalized 1D Gaussian of the given side length.
func gaussianKernel(sigma float64, size int) []float64 {
	kernel := make([]float64, size)
	center := size / 2

	var sum float64
	for i := range kernel {
		d := float64(i - center)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflect101 maps an out-of-range coordinate back into [0, n) by
// mirroring around the edge pixel without repeating it, the same
// boundary extension the derivative stage uses.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

// Smooth applies a Gaussian low-pass filter to a float64 grid and
// returns a new grid of identical dimensions. The square kernel is
// applied as two separable passes; values are left unclamped for the
// downstream numeric stages.
func Smooth(src *mat.Dense, sigma float64) *mat.Dense {
	rows, cols := src.Dims()
	kernel := gaussianKernel(sigma, KernelSize(sigma))
	radius := len(kernel) / 2

	// Horizontal pass.
	tmp := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for k, w := range kernel {
				acc += w * src.At(y, reflect101(x+k-radius, cols))
			}
			tmp.Set(y, x, acc)
		}
	}

	// Vertical pass.
	dst := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for k, w := range kernel {
				acc += w * tmp.At(reflect101(y+k-radius, rows), x)
			}
			dst.Set(y, x, acc)
		}
	}

	assertSameDims("smooth", src, dst)
	return dst
}
