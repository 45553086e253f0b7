package adapter

import (
	"errors"
	"image"
	"image/png"
	"io"
)

// ErrRasterizerUnavailable is returned by ResvgClient.Render when the binary was built without cgo
var ErrRasterizerUnavailable = errors.New("svg rasterization requires a cgo build")

// ResvgClient defines an interface for SVG rendering using resvg
//
//go:generate mockgen -source=image.go -destination=../mocks/image.go -package=mocks -mock_names=ResvgClient=MockResvgClient,ImageEncoder=MockImageEncoder
type ResvgClient interface {
	// Render rasterizes SVG data at the given width (0 = natural size), keeping the aspect ratio
	Render(data []byte, width int) (image.Image, error)
}

// ImageEncoder defines an interface for encoding images
type ImageEncoder interface {
	// EncodePNG encodes an image to PNG format
	EncodePNG(w io.Writer, img image.Image) error
}

// RealImageEncoder implements ImageEncoder using standard library
type RealImageEncoder struct{}

// NewImageEncoder creates a new real image encoder
func NewImageEncoder() ImageEncoder {
	return &RealImageEncoder{}
}

// EncodePNG encodes an image to PNG format
func (e *RealImageEncoder) EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
