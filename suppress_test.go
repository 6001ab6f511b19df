package canny

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSectorOf(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }

	cases := []struct {
		angle  float64
		sector int
	}{
		{deg(0), 0},
		{deg(10), 0},
		{deg(22.4), 0},
		{deg(22.6), 1},
		{deg(45), 1},
		{deg(67.4), 1},
		{deg(67.6), 2},
		{deg(90), 2},
		{deg(112.4), 2},
		{deg(112.6), 3},
		{deg(130), 3},
		{deg(157.4), 3},
		{deg(157.6), 0},
		{deg(179), 0},
		{deg(-10), 0},  // normalizes to 170
		{deg(-45), 3},  // normalizes to 135
		{deg(-100), 2}, // normalizes to 80
	}
	for _, c := range cases {
		assert.Equalf(t, c.sector, sectorOf(c.angle), "angle=%v rad", c.angle)
	}
}

// uniformDirection builds a GradientResult with the given magnitudes
// and a single direction value everywhere.
func uniformDirection(mags *mat.Dense, direction float64) GradientResult {
	rows, cols := mags.Dims()
	dir := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dir.Set(y, x, direction)
		}
	}
	return GradientResult{Magnitude: mags, Direction: dir}
}

func TestSuppressBorderRingZero(t *testing.T) {
	rows, cols := 5, 6
	mags := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mags.Set(y, x, float64(1+y*cols+x))
		}
	}

	dst := Suppress(uniformDirection(mags, 0))

	for y := 0; y < rows; y++ {
		assert.Zero(t, dst.At(y, 0))
		assert.Zero(t, dst.At(y, cols-1))
	}
	for x := 0; x < cols; x++ {
		assert.Zero(t, dst.At(0, x))
		assert.Zero(t, dst.At(rows-1, x))
	}
}

func TestSuppressKeepsLocalMaxima(t *testing.T) {
	mags := mat.NewDense(3, 5, nil)
	mags.Set(1, 1, 3)
	mags.Set(1, 2, 10)
	mags.Set(1, 3, 4)

	// Direction 0 selects the horizontal neighbors x±1.
	dst := Suppress(uniformDirection(mags, 0))

	assert.Equal(t, 10.0, dst.At(1, 2))
	assert.Zero(t, dst.At(1, 1), "beaten by the right neighbor")
	assert.Zero(t, dst.At(1, 3), "beaten by the left neighbor")
}

func TestSuppressTieSurvives(t *testing.T) {
	// A plateau of equal magnitudes must survive in full: >= beats both
	// neighbors on ties, keeping wider ridges intact.
	mags := mat.NewDense(3, 5, nil)
	for x := 0; x < 5; x++ {
		mags.Set(1, x, 5)
	}

	dst := Suppress(uniformDirection(mags, 0))

	for x := 1; x < 4; x++ {
		assert.Equalf(t, 5.0, dst.At(1, x), "plateau pixel x=%d", x)
	}
}

func TestSuppressVerticalSector(t *testing.T) {
	// Direction π/2 selects the vertical neighbors y±1.
	mags := mat.NewDense(5, 3, nil)
	mags.Set(1, 1, 2)
	mags.Set(2, 1, 9)
	mags.Set(3, 1, 2)

	dst := Suppress(uniformDirection(mags, math.Pi/2))

	assert.Equal(t, 9.0, dst.At(2, 1))
	assert.Zero(t, dst.At(1, 1))
	assert.Zero(t, dst.At(3, 1))
}

func TestSuppressDimensionMismatchPanics(t *testing.T) {
	g := GradientResult{
		Magnitude: mat.NewDense(4, 4, nil),
		Direction: mat.NewDense(5, 4, nil),
	}
	require.Panics(t, func() { Suppress(g) })
}
