// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagesize computes display dimensions for images placed on a PDF
// page, preserving the native aspect ratio within a bounding box.
package imagesize

import (
	"image"
	"math"
	"os"

	// Raster decoders. GIF is the primary format; the rest cover mixed
	// source folders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Box is a bounding box in points.
type Box struct {
	MaxWidth  float64
	MaxHeight float64
}

// fallbackScale sizes the placeholder box used when an image cannot be read.
const fallbackScale = 0.8

// Fit returns display dimensions for the image at path that fit inside box
// while preserving the aspect ratio. Landscape images are constrained
// width-first, portrait images height-first; if the constrained result still
// exceeds the other axis, it is re-derived from that axis. Images are never
// scaled up past their native pixel size.
//
// On any failure to read the image, Fit returns 80% of the box. The caller
// always receives positive, usable dimensions.
func Fit(path string, box Box) (width, height float64) {
	f, err := os.Open(path)
	if err != nil {
		return box.MaxWidth * fallbackScale, box.MaxHeight * fallbackScale
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return box.MaxWidth * fallbackScale, box.MaxHeight * fallbackScale
	}

	imgW := float64(cfg.Width)
	imgH := float64(cfg.Height)
	ratio := imgW / imgH

	if imgW > imgH {
		// Landscape: constrain the width first.
		width = math.Min(box.MaxWidth, imgW)
		height = width / ratio
		if height > box.MaxHeight {
			height = box.MaxHeight
			width = height * ratio
		}
	} else {
		// Portrait or square: constrain the height first.
		height = math.Min(box.MaxHeight, imgH)
		width = height * ratio
		if width > box.MaxWidth {
			width = box.MaxWidth
			height = width / ratio
		}
	}
	return width, height
}
