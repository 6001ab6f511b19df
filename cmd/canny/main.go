package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Alex7734/canny"
	"github.com/Alex7734/canny/utils"
)

const (
	modeGray    = "gray"
	modeColor   = "color"
	modeCompare = "compare"
)

var (
	// Flags
	source        = flag.String("in", "", "Source image, directory or URL")
	destination   = flag.String("out", "", "Destination file or directory")
	sigma         = flag.Float64("sigma", 1.4, "Gaussian smoothing sigma")
	lowThreshold  = flag.Float64("low", 0.05, "Low threshold ratio")
	highThreshold = flag.Float64("high", 0.15, "High threshold ratio")
	mode          = flag.String("mode", modeCompare, "Output mode: gray, color or compare")
)

func main() {
	flag.Parse()

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: canny -in input.jpg -out out.png")
	}
	if *mode != modeGray && *mode != modeColor && *mode != modeCompare {
		log.Fatalf("Unsupported mode %q, expecting gray, color or compare", *mode)
	}

	toProcess := make(map[string]string)

	if strings.HasPrefix(*source, "http://") || strings.HasPrefix(*source, "https://") {
		tmp, err := utils.DownloadImage(*source)
		if err != nil {
			log.Fatalf("Unable to download image: %v", err)
		}
		tmp.Close()
		defer os.Remove(tmp.Name())
		toProcess[tmp.Name()] = *destination
	} else {
		fs, err := os.Stat(*source)
		if err != nil {
			log.Fatalf("Unable to open source: %v", err)
		}

		switch fsMode := fs.Mode(); {
		case fsMode.IsDir():
			// Supported image files.
			extensions := []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".webp"}

			files, err := os.ReadDir(*source)
			if err != nil {
				log.Fatalf("Unable to read dir: %v", err)
			}

			dst, err := os.Stat(*destination)
			if err != nil {
				log.Fatalf("Unable to get dir stats: %v", err)
			}
			if dst.Mode().IsRegular() {
				log.Fatal("Please specify a directory as destination!")
			}

			for _, f := range files {
				ext := filepath.Ext(f.Name())
				for _, iex := range extensions {
					if strings.EqualFold(ext, iex) {
						name := strings.TrimSuffix(f.Name(), ext)
						in := filepath.Join(*source, f.Name())
						out := filepath.Join(*destination, name+".png")
						toProcess[in] = out
					}
				}
			}

		case fsMode.IsRegular():
			toProcess[*source] = *destination
		}
	}

	for in, out := range toProcess {
		if err := process(in, out); err != nil {
			log.Fatalf("%sError processing %s: %v%s", utils.ErrorColor, in, err, utils.DefaultColor)
		}
	}
}

// process runs the detector over a single image file and saves the result.
func process(in, out string) error {
	src, err := imgio.Open(in)
	if err != nil {
		return fmt.Errorf("unable to decode source image: %w", err)
	}

	detector := &canny.Detector{
		Sigma:     *sigma,
		LowRatio:  *lowThreshold,
		HighRatio: *highThreshold,
	}

	s := utils.NewSpinner()
	s.Start("Detecting edges...")
	start := time.Now()

	output, err := render(detector, src)
	s.Stop()
	if err != nil {
		return err
	}

	if err := imgio.Save(out, output, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("unable to save output image: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\rSaved %s%s%s in %s%s%s\n",
		utils.SuccessColor, out, utils.DefaultColor,
		utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	return nil
}

// render produces the image selected by the -mode flag.
func render(detector *canny.Detector, src image.Image) (image.Image, error) {
	switch *mode {
	case modeColor:
		detector.Color = true
		return detector.Detect(src)
	case modeCompare:
		grayMask, err := detector.Detect(src)
		if err != nil {
			return nil, err
		}
		detector.Color = true
		colorMask, err := detector.Detect(src)
		if err != nil {
			return nil, err
		}
		return canny.RenderComparison(src, grayMask, colorMask, detector), nil
	default:
		return detector.Detect(src)
	}
}
