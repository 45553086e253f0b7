package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/config"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/export"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
	"github.com/feral-file/rustaceans/internal/palette"
	"github.com/feral-file/rustaceans/internal/render"
	"github.com/feral-file/rustaceans/internal/uri"
)

var (
	configFile string
	envPath    string
	outputDir  string
	width      int
	first      uint64
	last       uint64

	cfg *config.RenderConfig
)

var rootCmd = &cobra.Command{
	Use:   "render",
	Short: "Render Rustaceans artwork and metadata offline",
	Long: `Render the deterministic SVG, metadata document, token URI or PNG preview
for a range of token ids. Output depends only on the id, so no database or
chain access is needed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.ChdirRepoRoot()
		var err error
		cfg, err = config.LoadRenderConfig(configFile, envPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = outputDir
		}
		if cmd.Flags().Changed("width") {
			cfg.Rasterizer.Width = width
		}

		return logger.Initialize(logger.Config{
			Debug:           cfg.Debug,
			Service:         "rustaceans-render",
			SentryDSN:       cfg.SentryDSN,
			BreadcrumbLevel: zapcore.InfoLevel,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Flush(2 * time.Second)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Output directory")
	rootCmd.PersistentFlags().Uint64Var(&first, "from", 0, "First token id")
	rootCmd.PersistentFlags().Uint64Var(&last, "to", 0, "Last token id (inclusive)")

	pngCmd.Flags().IntVarP(&width, "width", "w", 0, "PNG width in pixels")

	rootCmd.AddCommand(formatCommand(export.FormatSVG, "Write token images as SVG"))
	rootCmd.AddCommand(formatCommand(export.FormatMetadata, "Write canonical metadata JSON documents"))
	rootCmd.AddCommand(formatCommand(export.FormatURI, "Write data URI token URIs"))
	rootCmd.AddCommand(pngCmd)
}

var pngCmd = formatCommand(export.FormatPNG, "Write rasterized PNG previews")

func formatCommand(format export.Format, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(format),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, format)
		},
	}
}

func run(cmd *cobra.Command, format export.Format) error {
	ids, err := export.Range(domain.TokenID(first), domain.TokenID(last))
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(
		palette.NewKeccak(),
		adapter.NewCanonicalJSON(adapter.NewJSON()),
		uri.NewCodec(adapter.NewBase64()),
	)

	var rast rasterizer.Rasterizer
	if format == export.FormatPNG {
		if cfg.Rasterizer.Width < 0 || cfg.Rasterizer.Width > rasterizer.MaxWidth {
			return fmt.Errorf("width must be between 0 and %d", rasterizer.MaxWidth)
		}
		rast = rasterizer.NewRasterizer(adapter.NewResvgClient(), adapter.NewImageEncoder(), &rasterizer.Config{
			Width: cfg.Rasterizer.Width,
		})
	}

	exporter := export.NewExporter(export.Config{
		OutputDir:       cfg.OutputDir,
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, renderer, rast, adapter.NewFileSystem())

	n, err := exporter.Export(cmd.Context(), format, ids)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s files to %s\n", n, format, cfg.OutputDir)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
