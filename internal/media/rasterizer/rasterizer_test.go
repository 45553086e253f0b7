package rasterizer_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
	"github.com/feral-file/rustaceans/internal/mocks"
)

const testSVG = `<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg"><rect width="100" height="100" fill="red"/></svg>`

func createTestImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := range 100 {
		for x := range 100 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestRasterize(t *testing.T) {
	tests := []struct {
		name          string
		config        *rasterizer.Config
		width         int
		expectedWidth int
	}{
		{name: "natural size", config: nil, width: 0, expectedWidth: 0},
		{name: "configured default", config: &rasterizer.Config{Width: 800}, width: 0, expectedWidth: 800},
		{name: "explicit width wins", config: &rasterizer.Config{Width: 800}, width: 200, expectedWidth: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResvg := mocks.NewMockResvgClient(ctrl)
			mockEncoder := mocks.NewMockImageEncoder(ctrl)
			img := createTestImage()

			mockResvg.EXPECT().Render([]byte(testSVG), tt.expectedWidth).Return(img, nil)
			mockEncoder.EXPECT().EncodePNG(gomock.Any(), img).
				DoAndReturn(func(w io.Writer, _ image.Image) error {
					_, err := w.Write([]byte("png-bytes"))
					return err
				})

			r := rasterizer.NewRasterizer(mockResvg, mockEncoder, tt.config)
			out, err := r.Rasterize(context.Background(), []byte(testSVG), tt.width)
			require.NoError(t, err)
			assert.Equal(t, []byte("png-bytes"), out)
		})
	}
}

func TestRasterize_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResvg := mocks.NewMockResvgClient(ctrl)
	mockEncoder := mocks.NewMockImageEncoder(ctrl)
	r := rasterizer.NewRasterizer(mockResvg, mockEncoder, nil)
	ctx := context.Background()

	_, err := r.Rasterize(ctx, []byte(testSVG), -1)
	assert.Error(t, err)
	_, err = r.Rasterize(ctx, []byte(testSVG), rasterizer.MaxWidth+1)
	assert.Error(t, err)

	mockResvg.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrRasterizerUnavailable)
	_, err = r.Rasterize(ctx, []byte(testSVG), 0)
	assert.ErrorIs(t, err, adapter.ErrRasterizerUnavailable)

	mockResvg.EXPECT().Render(gomock.Any(), gomock.Any()).Return(createTestImage(), nil)
	mockEncoder.EXPECT().EncodePNG(gomock.Any(), gomock.Any()).Return(errors.New("encode failed"))
	_, err = r.Rasterize(ctx, []byte(testSVG), 0)
	assert.ErrorContains(t, err, "failed to encode PNG")
}

func TestRasterize_RealEncoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResvg := mocks.NewMockResvgClient(ctrl)
	mockResvg.EXPECT().Render(gomock.Any(), 0).Return(createTestImage(), nil)

	r := rasterizer.NewRasterizer(mockResvg, adapter.NewImageEncoder(), nil)
	out, err := r.Rasterize(context.Background(), []byte(testSVG), 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG\r\n\x1a\n")))
}
