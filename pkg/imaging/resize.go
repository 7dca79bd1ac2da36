// Package imaging shrinks oversized uploads before they are persisted.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// JPEGQuality is used when re-encoding downscaled JPEG images.
const JPEGQuality = 85

// Downscale shrinks JPEG and PNG images whose longest side exceeds maxDimension,
// keeping aspect ratio and the original format. Other formats (GIF may be
// animated) and images already within bounds are returned unchanged with
// resized=false.
func Downscale(data []byte, contentType string, maxDimension int) (out []byte, resized bool, err error) {
	if maxDimension <= 0 || (contentType != "image/jpeg" && contentType != "image/png") {
		return data, false, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= maxDimension && cfg.Height <= maxDimension {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	newWidth, newHeight := fit(cfg.Width, cfg.Height, maxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	switch contentType {
	case "image/jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality})
	case "image/png":
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}

// fit returns dimensions scaled so the longest side equals maxDimension.
func fit(width, height, maxDimension int) (int, int) {
	if width >= height {
		h := int(float64(height) * float64(maxDimension) / float64(width))
		return maxDimension, max(h, 1)
	}
	w := int(float64(width) * float64(maxDimension) / float64(height))
	return max(w, 1), maxDimension
}
