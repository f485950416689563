package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/output"
	"github.com/df07/weekend-pathtracer/pkg/renderer"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Workers   int
	TileSize  int
	Seed      int64
	Output    string
	Format    string
	Scale     int
	Verbose   bool
	Help      bool
}

func main() {
	config, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if config.Help {
		showHelp(fs, os.Stdout)
		return
	}

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(config, logger, time.Now()); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// newFlagSet registers every option on a fresh flag set writing into config
func newFlagSet(config *Config, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: 'default', 'random' or 'single'")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = keep scene aspect ratio)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	fs.Int64Var(&config.Seed, "seed", scene.DefaultRandomSeed, "Random seed for sampling and procedural scenes")
	fs.StringVar(&config.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	fs.StringVar(&config.Format, "format", "", "Output format: png, jpeg, bmp or tiff (default from file extension)")
	fs.IntVar(&config.Scale, "scale", 1, "Integer upscale factor applied to the saved image")
	fs.BoolVar(&config.Verbose, "verbose", false, "Log per-tile progress")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string, errOut io.Writer) (Config, *flag.FlagSet, error) {
	var config Config
	fs := newFlagSet(&config, errOut)
	err := fs.Parse(args)
	return config, fs, err
}

func showHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Sphere Path Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene_type>/render_<timestamp>.png unless -output is given")
}

// createScene builds the requested scene and applies the size and sampling overrides
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType, config.Seed)
	if err != nil {
		return nil, err
	}

	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	if config.Width > 0 {
		if config.Height <= 0 {
			// Keep the scene's aspect ratio
			height = max(1, config.Width*height/width)
		}
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}
	if width != s.SamplingConfig.Width || height != s.SamplingConfig.Height {
		s.Resize(width, height)
	}

	s.SamplingConfig = core.MergeSamplingConfig(s.SamplingConfig, core.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	})
	return s, nil
}

// resolveOutput picks the output path and format from the flags
func resolveOutput(config Config, now time.Time) (string, output.Format, error) {
	path := config.Output
	if path == "" {
		ext := "png"
		if config.Format != "" {
			ext = config.Format
		}
		path = filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), ext))
	}

	var format output.Format
	var err error
	if config.Format != "" {
		format, err = output.ParseFormat(config.Format)
	} else {
		format, err = output.FormatFromPath(path)
	}
	if err != nil {
		return "", "", err
	}
	return path, format, nil
}

func run(config Config, logger *slog.Logger, now time.Time) error {
	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	path, format, err := resolveOutput(config, now)
	if err != nil {
		return err
	}

	sc := selectedScene.SamplingConfig
	logger.Info("starting render",
		"scene", config.SceneType,
		"width", sc.Width,
		"height", sc.Height,
		"samples", sc.SamplesPerPixel,
		"maxDepth", sc.MaxDepth,
		"objects", selectedScene.GetPrimitiveCount())

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	renderConfig.TileSize = config.TileSize
	renderConfig.Seed = config.Seed

	raytracer := renderer.NewRaytracer(selectedScene, renderConfig, core.NewSlogLogger(logger, slog.LevelDebug))
	img, stats := raytracer.RenderPass()

	p := message.NewPrinter(language.English)
	logger.Info("render completed",
		"duration", stats.Duration.Round(time.Millisecond),
		"pixels", p.Sprintf("%d", stats.TotalPixels),
		"samples", p.Sprintf("%d", stats.TotalSamples),
		"samplesPerSecond", p.Sprintf("%.0f", float64(stats.TotalSamples)/max(stats.Duration.Seconds(), 1e-9)))

	if err := output.Save(path, output.Upscale(img, config.Scale), format); err != nil {
		return err
	}

	logger.Info("render saved", "path", path, "format", format)
	return nil
}
