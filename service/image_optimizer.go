package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"logo-banner/utils"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// NormalizeBanner makes sure a screenshot is exactly width x height and PNG encoded.
// Device pixel ratio or scrollbars can make the browser capture slightly off.
func NormalizeBanner(pngData []byte, width, height int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if format == "png" && bounds.Dx() == width && bounds.Dy() == height {
		return pngData, nil
	}

	utils.Log().Infof("🔄 Normalizing banner: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	fitted := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// OptimizeImage builds a JPEG preview of an exported banner
// size: "thumb" or "medium"
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	utils.Log().Debugf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		utils.Log().Warnf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	var resized image.Image = img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		// Fit keeps the aspect ratio inside maxDim x maxDim
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	utils.Log().Infof("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
