package canny

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// Detector holds the tunable parameters of the edge detection pipeline.
// The zero value is not useful; use DefaultDetector or fill every field.
// A Detector is never mutated by Detect, so a single value may be shared
// by concurrent calls.
type Detector struct {
	// Sigma is the Gaussian smoothing standard deviation, > 0.
	Sigma float64
	// LowRatio and HighRatio select the hysteresis thresholds as
	// fractions of the maximum suppressed magnitude, each in [0, 1].
	// Keeping LowRatio <= HighRatio is the caller's responsibility.
	LowRatio  float64
	HighRatio float64
	// Color switches the gradient estimator to the joint three-channel
	// structure tensor instead of the grayscale intensity tensor.
	Color bool
}

// DefaultDetector returns a Detector tuned with the classic Canny
// defaults: σ=1.4, low=0.05, high=0.15, grayscale.
func DefaultDetector() *Detector {
	return &Detector{
		Sigma:     1.4,
		LowRatio:  0.05,
		HighRatio: 0.15,
	}
}

// Detect runs the full pipeline over the source image and returns the
// binary edge mask: smoothing, structure-tensor gradients, non-maximum
// suppression, and double-threshold hysteresis, in that order. The mask
// has the source dimensions; edge pixels hold 255, the rest 0.
func (d *Detector) Detect(src image.Image) (*image.Gray, error) {
	if err := d.validate(src); err != nil {
		return nil, err
	}

	img := ImgToNRGBA(src)

	var channels []*mat.Dense
	if d.Color {
		channels = splitChannels(img)
	} else {
		channels = []*mat.Dense{lumaGrid(img)}
	}
	for i, ch := range channels {
		channels[i] = Smooth(ch, d.Sigma)
	}

	gradients := Gradients(channels)
	suppressed := Suppress(gradients)

	return Threshold(suppressed, d.LowRatio, d.HighRatio), nil
}

func (d *Detector) validate(src image.Image) error {
	if src == nil || src.Bounds().Dx() == 0 || src.Bounds().Dy() == 0 {
		return ErrEmptyImage
	}
	if d.Sigma <= 0 {
		return ErrSigma
	}
	if d.LowRatio < 0 || d.LowRatio > 1 || d.HighRatio < 0 || d.HighRatio > 1 {
		return ErrThreshold
	}
	return nil
}
