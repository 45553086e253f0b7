package rasterizer

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/logger"
)

// MaxWidth bounds the requested output width
const MaxWidth = 4096

// Rasterizer handles SVG to PNG conversion using resvg
//
//go:generate mockgen -source=rasterizer.go -destination=../../mocks/media_rasterizer.go -package=mocks -mock_names=Rasterizer=MockRasterizer
type Rasterizer interface {
	// Rasterize converts an SVG to a PNG image. A zero width uses the configured default.
	Rasterize(ctx context.Context, svgData []byte, width int) ([]byte, error)
}

type rasterizer struct {
	resvgClient  adapter.ResvgClient
	imageEncoder adapter.ImageEncoder
	width        int
}

// Config holds configuration for the rasterizer
type Config struct {
	// Width is the default output width (0 = SVG natural size).
	// Height follows from the aspect ratio.
	Width int
}

// NewRasterizer creates a new SVG rasterizer instance
func NewRasterizer(resvgClient adapter.ResvgClient, imageEncoder adapter.ImageEncoder, cfg *Config) Rasterizer {
	if cfg == nil {
		cfg = &Config{}
	}

	return &rasterizer{
		resvgClient:  resvgClient,
		imageEncoder: imageEncoder,
		width:        cfg.Width,
	}
}

func (r *rasterizer) Rasterize(ctx context.Context, svgData []byte, width int) ([]byte, error) {
	if width < 0 || width > MaxWidth {
		return nil, fmt.Errorf("width %d out of range [0, %d]", width, MaxWidth)
	}
	if width == 0 {
		width = r.width
	}

	img, err := r.resvgClient.Render(svgData, width)
	if err != nil {
		return nil, fmt.Errorf("failed to render SVG: %w", err)
	}

	var buf bytes.Buffer
	if err := r.imageEncoder.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	bounds := img.Bounds()
	logger.DebugCtx(ctx, "SVG rasterized",
		zap.Int("svgSize", len(svgData)),
		zap.Int("renderedWidth", bounds.Dx()),
		zap.Int("renderedHeight", bounds.Dy()),
		zap.Int("outputSize", buf.Len()),
	)

	return buf.Bytes(), nil
}
