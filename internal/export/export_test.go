package export

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/mocks"
	"github.com/feral-file/rustaceans/internal/palette"
	"github.com/feral-file/rustaceans/internal/render"
	"github.com/feral-file/rustaceans/internal/uri"
)

type exportTestFixture struct {
	ctrl       *gomock.Controller
	fs         *mocks.MockFileSystem
	rasterizer *mocks.MockRasterizer
	renderer   render.Renderer

	mu    sync.Mutex
	files map[string][]byte
}

func setupExportTest(t *testing.T) *exportTestFixture {
	ctrl := gomock.NewController(t)
	f := &exportTestFixture{
		ctrl:       ctrl,
		fs:         mocks.NewMockFileSystem(ctrl),
		rasterizer: mocks.NewMockRasterizer(ctrl),
		renderer: render.NewRenderer(
			palette.NewKeccak(),
			adapter.NewCanonicalJSON(adapter.NewJSON()),
			uri.NewCodec(adapter.NewBase64()),
		),
		files: make(map[string][]byte),
	}
	return f
}

func (f *exportTestFixture) recordWrites() {
	f.fs.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(name string, data []byte, _ os.FileMode) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.files[name] = data
			return nil
		}).AnyTimes()
}

func (f *exportTestFixture) exporter() Exporter {
	return NewExporter(Config{OutputDir: "out", WorkerPoolSize: 3, WorkerQueueSize: 10}, f.renderer, f.rasterizer, f.fs)
}

func TestExport_SVG(t *testing.T) {
	f := setupExportTest(t)
	defer f.ctrl.Finish()

	f.fs.EXPECT().MkdirAll("out", gomock.Any()).Return(nil)
	f.recordWrites()

	ids, err := Range(1, 5)
	require.NoError(t, err)

	n, err := f.exporter().Export(context.Background(), FormatSVG, ids)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	for _, id := range ids {
		data, ok := f.files[filepath.Join("out", id.String()+".svg")]
		require.True(t, ok)
		assert.Equal(t, f.renderer.SVG(id), data)
	}
}

func TestExport_MetadataAndURI(t *testing.T) {
	f := setupExportTest(t)
	defer f.ctrl.Finish()

	f.fs.EXPECT().MkdirAll("out", gomock.Any()).Return(nil).Times(2)
	f.recordWrites()

	ids := []domain.TokenID{7}
	_, err := f.exporter().Export(context.Background(), FormatMetadata, ids)
	require.NoError(t, err)
	_, err = f.exporter().Export(context.Background(), FormatURI, ids)
	require.NoError(t, err)

	want, err := f.renderer.MetadataJSON(7)
	require.NoError(t, err)
	assert.Equal(t, want, f.files[filepath.Join("out", "7.json")])

	tokenURI, err := f.renderer.TokenURI(7)
	require.NoError(t, err)
	assert.Equal(t, tokenURI, string(f.files[filepath.Join("out", "7.txt")]))
}

func TestExport_PNG(t *testing.T) {
	f := setupExportTest(t)
	defer f.ctrl.Finish()

	f.fs.EXPECT().MkdirAll("out", gomock.Any()).Return(nil)
	f.recordWrites()
	f.rasterizer.EXPECT().Rasterize(gomock.Any(), f.renderer.SVG(2), 0).Return([]byte("png"), nil)

	n, err := f.exporter().Export(context.Background(), FormatPNG, []domain.TokenID{2})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("png"), f.files[filepath.Join("out", "2.png")])
}

func TestExport_Failures(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		f := setupExportTest(t)
		defer f.ctrl.Finish()

		_, err := f.exporter().Export(context.Background(), Format("gif"), []domain.TokenID{1})
		assert.Error(t, err)
	})

	t.Run("mkdir fails", func(t *testing.T) {
		f := setupExportTest(t)
		defer f.ctrl.Finish()

		f.fs.EXPECT().MkdirAll("out", gomock.Any()).Return(errors.New("read-only"))
		_, err := f.exporter().Export(context.Background(), FormatSVG, []domain.TokenID{1})
		assert.Error(t, err)
	})

	t.Run("write fails", func(t *testing.T) {
		f := setupExportTest(t)
		defer f.ctrl.Finish()

		f.fs.EXPECT().MkdirAll("out", gomock.Any()).Return(nil)
		f.fs.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()

		_, err := f.exporter().Export(context.Background(), FormatSVG, []domain.TokenID{1, 2})
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("png without rasterizer", func(t *testing.T) {
		f := setupExportTest(t)
		defer f.ctrl.Finish()

		e := NewExporter(Config{OutputDir: "out"}, f.renderer, nil, f.fs)
		_, err := e.Export(context.Background(), FormatPNG, []domain.TokenID{1})
		assert.Error(t, err)
	})
}

func TestRange(t *testing.T) {
	ids, err := Range(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{3}, ids)

	ids, err = Range(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{0, 1, 2}, ids)

	_, err = Range(5, 4)
	assert.Error(t, err)

	ids, err = Range(1, MaxRange)
	require.NoError(t, err)
	assert.Len(t, ids, MaxRange)

	_, err = Range(0, MaxRange)
	assert.Error(t, err)

	_, err = Range(0, domain.TokenID(math.MaxUint64))
	assert.Error(t, err)
}
