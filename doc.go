/*
Package canny implements a Canny-style edge detection pipeline for
grayscale and color images: Gaussian smoothing, structure-tensor
gradients, a rotation-aware magnitude/direction estimator, non-maximum
suppression and double-threshold hysteresis edge tracking.

The package provides a command line utility supporting various
customization options. Check the supported commands by typing:

	$ canny --help

Example to detect the edges of an image and save the binary mask:

	package main

	import (
		"image"
		"image/png"
		"log"
		"os"

		"github.com/Alex7734/canny"
	)

	func main() {
		f, err := os.Open("sample.png")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		src, _, err := image.Decode(f)
		if err != nil {
			log.Fatal(err)
		}

		d := canny.DefaultDetector()
		mask, err := d.Detect(src)
		if err != nil {
			log.Fatal(err)
		}

		out, err := os.Create("edges.png")
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()

		if err := png.Encode(out, mask); err != nil {
			log.Fatal(err)
		}
	}

Setting Detector.Color runs the joint three-channel structure tensor
instead of the grayscale path, which captures edges visible only as
chromatic contrast. RenderComparison composites the original image with
the grayscale and color masks into a single labeled sheet.
*/
package canny
