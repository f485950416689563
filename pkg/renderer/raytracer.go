package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/integrator"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// RenderConfig controls how a render is split across workers
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile generators derive from it
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders a scene into an 8-bit RGB raster
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer using unidirectional path tracing.
// A nil logger discards progress output.
func NewRaytracer(scene *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	return NewRaytracerWithIntegrator(scene, integrator.NewPathTracingIntegrator(scene.SamplingConfig), config, logger)
}

// NewRaytracerWithIntegrator creates a raytracer with a specific integrator
func NewRaytracerWithIntegrator(scene *scene.Scene, integratorInst integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// RenderPass renders the whole image with the scene's samples per pixel.
// The same scene, config and seed always produce the same image.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()
	width := rt.scene.SamplingConfig.Width
	height := rt.scene.SamplingConfig.Height
	samples := rt.scene.SamplingConfig.SamplesPerPixel

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator)
	pool := NewWorkerPool(tileRenderer, rt.config.NumWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, %d tiles on %d workers\n",
		width, height, samples, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:            tile,
			SamplesPerPixel: samples,
			PixelStats:      pixelStats,
		})
	}

	var stats RenderStats
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
		rt.logger.Printf("Tile %d done (%d/%d)\n", result.TileID, i+1, len(tiles))
	}
	pool.Stop()

	img := rt.assembleImage(pixelStats)
	stats.Duration = time.Since(start)
	return img, stats
}

// assembleImage converts accumulated pixel statistics into the output raster
func (rt *Raytracer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	width := rt.scene.SamplingConfig.Width
	height := rt.scene.SamplingConfig.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, Vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// Vec3ToColor converts a linear color to 8-bit RGBA, clamping each channel to [0,1]
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.999 * colorVec.X),
		G: uint8(255.999 * colorVec.Y),
		B: uint8(255.999 * colorVec.Z),
		A: 255,
	}
}
