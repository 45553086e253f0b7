// Package export renders ranges of tokens to files using a worker pool.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
	"github.com/feral-file/rustaceans/internal/render"
)

// Format is an output kind
type Format string

const (
	FormatSVG      Format = "svg"
	FormatMetadata Format = "metadata"
	FormatURI      Format = "uri"
	FormatPNG      Format = "png"
)

var extensions = map[Format]string{
	FormatSVG:      ".svg",
	FormatMetadata: ".json",
	FormatURI:      ".txt",
	FormatPNG:      ".png",
}

// Config holds exporter configuration
type Config struct {
	OutputDir       string
	Width           int // PNG width, 0 = rasterizer default
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Exporter writes one file per token id
type Exporter interface {
	// Export renders ids in format and returns the number of files written.
	// It stops at the first failure.
	Export(ctx context.Context, format Format, ids []domain.TokenID) (int, error)
}

type exporter struct {
	config     Config
	renderer   render.Renderer
	rasterizer rasterizer.Rasterizer
	fs         adapter.FileSystem
}

// NewExporter creates an exporter. rasterizer is only used for PNG output and may be nil otherwise.
func NewExporter(cfg Config, renderer render.Renderer, r rasterizer.Rasterizer, fs adapter.FileSystem) Exporter {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 1
	}
	return &exporter{
		config:     cfg,
		renderer:   renderer,
		rasterizer: r,
		fs:         fs,
	}
}

func (e *exporter) Export(ctx context.Context, format Format, ids []domain.TokenID) (int, error) {
	ext, ok := extensions[format]
	if !ok {
		return 0, fmt.Errorf("unsupported format %q", format)
	}
	if format == FormatPNG && e.rasterizer == nil {
		return 0, fmt.Errorf("png output needs a rasterizer")
	}

	if err := e.fs.MkdirAll(e.config.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	pool := pond.NewPool(
		e.config.WorkerPoolSize,
		pond.WithQueueSize(e.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	var written atomic.Int64
	group := pool.NewGroup()
	for _, id := range ids {
		group.SubmitErr(func() error {
			data, err := e.produce(ctx, format, id)
			if err != nil {
				return fmt.Errorf("token %s: %w", id, err)
			}
			path := filepath.Join(e.config.OutputDir, id.String()+ext)
			if err := e.fs.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			written.Add(1)
			return nil
		})
	}

	err := group.Wait()
	n := int(written.Load())
	if err != nil {
		return n, err
	}

	logger.InfoCtx(ctx, "Export finished",
		zap.String("format", string(format)),
		zap.Int("files", n),
		zap.String("output_dir", e.config.OutputDir),
	)
	return n, nil
}

func (e *exporter) produce(ctx context.Context, format Format, id domain.TokenID) ([]byte, error) {
	switch format {
	case FormatSVG:
		return e.renderer.SVG(id), nil
	case FormatMetadata:
		return e.renderer.MetadataJSON(id)
	case FormatURI:
		s, err := e.renderer.TokenURI(id)
		return []byte(s), err
	case FormatPNG:
		return e.rasterizer.Rasterize(ctx, e.renderer.SVG(id), e.config.Width)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// MaxRange is the most ids a single Range may return
const MaxRange = 100_000

// Range returns the ids first..last inclusive
func Range(first, last domain.TokenID) ([]domain.TokenID, error) {
	if last < first {
		return nil, fmt.Errorf("invalid range %s..%s", first, last)
	}
	// compared as a difference so first=0, last=MaxUint64 cannot wrap
	if uint64(last-first) >= MaxRange {
		return nil, fmt.Errorf("range %s..%s exceeds %d ids", first, last, MaxRange)
	}
	ids := make([]domain.TokenID, 0, last-first+1)
	for id := first; ; id++ {
		ids = append(ids, id)
		if id == last {
			break
		}
	}
	return ids, nil
}
