//go:build !cgo

package adapter

import "image"

// RealResvgClient is a placeholder that always fails without cgo
type RealResvgClient struct{}

// NewResvgClient creates a new resvg client
func NewResvgClient() ResvgClient {
	return &RealResvgClient{}
}

func (c *RealResvgClient) Render(data []byte, width int) (image.Image, error) {
	return nil, ErrRasterizerUnavailable
}
