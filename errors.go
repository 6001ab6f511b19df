package canny

import "errors"

// Sentinel errors reported by Detect before any stage runs.
// Parameters outside the documented domain are rejected, not clamped.
var (
	// ErrEmptyImage indicates a source image with zero rows or columns.
	ErrEmptyImage = errors.New("canny: source image must have at least one row and one column")
	// ErrSigma indicates a non-positive Gaussian standard deviation.
	ErrSigma = errors.New("canny: sigma must be greater than zero")
	// ErrThreshold indicates a threshold ratio outside [0, 1].
	ErrThreshold = errors.New("canny: threshold ratios must be inside [0, 1]")
)
