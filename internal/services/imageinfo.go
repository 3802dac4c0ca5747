package services

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the upload formats the chat endpoint accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageAnalysis describes an uploaded image for the fallback responder's
// image context.
type ImageAnalysis struct {
	Text        string
	Width       int
	Height      int
	Format      string
	HasText     bool
	Description string
}

// AnalyzeImage extracts dimensions and format from the image header and
// synthesizes an orientation+dimensions description.
func AnalyzeImage(data []byte) (ImageAnalysis, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageAnalysis{Description: "Image fournie"}, fmt.Errorf("failed to decode image: %w", err)
	}

	orientation := "carré"
	switch {
	case cfg.Width > cfg.Height:
		orientation = "paysage"
	case cfg.Height > cfg.Width:
		orientation = "portrait"
	}

	return ImageAnalysis{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      format,
		Description: fmt.Sprintf("Image %s de %dx%d pixels", orientation, cfg.Width, cfg.Height),
	}, nil
}
