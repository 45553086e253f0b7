//go:build cgo

package adapter

import (
	"image"

	"github.com/xo/resvg"
)

// RealResvgClient implements ResvgClient using the resvg library
type RealResvgClient struct{}

// NewResvgClient creates a new resvg client
func NewResvgClient() ResvgClient {
	return &RealResvgClient{}
}

func (c *RealResvgClient) Render(data []byte, width int) (image.Image, error) {
	opts := []resvg.Option{resvg.WithScaleMode(resvg.ScaleBestFit)}
	if width > 0 {
		opts = append(opts, resvg.WithWidth(width))
	}
	return resvg.Render(data, opts...)
}
