package canny

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderComparisonGeometry(t *testing.T) {
	src := flatImage(8, 6, color.NRGBA{R: 120, G: 60, B: 200, A: 255})
	grayMask := image.NewGray(image.Rect(0, 0, 8, 6))
	colorMask := image.NewGray(image.Rect(0, 0, 8, 6))

	sheet := RenderComparison(src, grayMask, colorMask, DefaultDetector())

	assert.Equal(t, 8*3, sheet.Bounds().Dx())
	assert.Equal(t, 6+2*labelHeight, sheet.Bounds().Dy())
}

func TestRenderComparisonPlacesPanels(t *testing.T) {
	src := flatImage(8, 6, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
	grayMask := image.NewGray(image.Rect(0, 0, 8, 6))
	grayMask.SetGray(3, 2, color.Gray{Y: edgeOn})
	colorMask := image.NewGray(image.Rect(0, 0, 8, 6))

	sheet := RenderComparison(src, grayMask, colorMask, DefaultDetector())

	// Source panel keeps its color.
	r, g, _, _ := sheet.At(4, labelHeight+3).RGBA()
	require.Greater(t, r>>8, uint32(150))
	require.Less(t, g>>8, uint32(50))

	// The mask's edge pixel lands in the middle panel, shifted by one
	// panel width and the caption band.
	r, g, b, _ := sheet.At(8+3, labelHeight+2).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Greater(t, g>>8, uint32(200))
	assert.Greater(t, b>>8, uint32(200))

	// Its non-edge surroundings stay black.
	r, g, b, _ = sheet.At(8+6, labelHeight+4).RGBA()
	assert.Less(t, r>>8, uint32(50))
	assert.Less(t, g>>8, uint32(50))
	assert.Less(t, b>>8, uint32(50))
}
