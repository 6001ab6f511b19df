package canny

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Luma weights of the Rec. 601 grayscale conversion.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// lumaGrid collapses the image to a single float64 intensity grid
// using the Rec. 601 weights.
func lumaGrid(img *image.NRGBA) *mat.Dense {
	rows, cols := img.Bounds().Dy(), img.Bounds().Dx()
	grid := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		i := img.PixOffset(0, y)
		for x := 0; x < cols; x++ {
			r := float64(img.Pix[i+0])
			g := float64(img.Pix[i+1])
			b := float64(img.Pix[i+2])
			grid.Set(y, x, lumaR*r+lumaG*g+lumaB*b)
			i += 4
		}
	}
	return grid
}

// splitChannels extracts the three color planes as separate float64 grids.
func splitChannels(img *image.NRGBA) []*mat.Dense {
	rows, cols := img.Bounds().Dy(), img.Bounds().Dx()
	channels := make([]*mat.Dense, 3)
	for c := range channels {
		channels[c] = mat.NewDense(rows, cols, nil)
	}

	for y := 0; y < rows; y++ {
		i := img.PixOffset(0, y)
		for x := 0; x < cols; x++ {
			for c := 0; c < 3; c++ {
				channels[c].Set(y, x, float64(img.Pix[i+c]))
			}
			i += 4
		}
	}
	return channels
}

// Min returns the smallest value between two or more numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two or more numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// assertSameDims panics when two grids produced within a single pipeline
// pass diverge in shape. A violation is an implementation bug, never a
// caller error.
func assertSameDims(stage string, a, b mat.Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(fmt.Sprintf("canny: %s: grid dimensions diverged (%dx%d vs %dx%d)", stage, ar, ac, br, bc))
	}
}
