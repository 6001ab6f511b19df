package canny

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// labelHeight is the height of the caption band above the panels and of
// the parameter banner below them.
const labelHeight = 30

// RenderComparison composites the source image and the two edge masks
// side by side, with captions on top and a parameter banner underneath.
// All three inputs must share the same dimensions.
func RenderComparison(src image.Image, grayEdges, colorEdges *image.Gray, d *Detector) image.Image {
	cols := src.Bounds().Dx()
	rows := src.Bounds().Dy()

	ctx := gg.NewContext(cols*3, rows+2*labelHeight)
	ctx.SetRGB(0, 0, 0)
	ctx.Clear()
	ctx.SetFontFace(basicfont.Face7x13)

	panels := []image.Image{src, grayEdges, colorEdges}
	captions := []string{"Original", "Grayscale ED", "Color ED"}

	ctx.SetRGB(1, 1, 1)
	for i, caption := range captions {
		w, _ := ctx.MeasureString(caption)
		cx := float64(i*cols) + (float64(cols)-w)/2
		ctx.DrawString(caption, cx, 20)
	}
	for i, panel := range panels {
		ctx.DrawImage(panel, i*cols, labelHeight)
	}

	banner := fmt.Sprintf("Low Threshold: %.2f | High Threshold: %.2f | Sigma: %.1f",
		d.LowRatio, d.HighRatio, d.Sigma)
	ctx.DrawString(banner, 10, float64(labelHeight+rows)+20)

	return ctx.Image()
}
