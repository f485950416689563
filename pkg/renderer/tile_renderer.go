package renderer

import (
	"image"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/integrator"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders every pixel inside bounds into pixelStats.
// pixelStats is indexed [y][x] in image coordinates; bounds of concurrent calls must not overlap.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, samplesPerPixel int) RenderStats {
	camera := tr.scene.Camera
	width := tr.scene.SamplingConfig.Width
	height := tr.scene.SamplingConfig.Height

	// Viewport coordinates span [0,1] across the first and last pixel
	sDenom := float64(max(width-1, 1))
	tDenom := float64(max(height-1, 1))

	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  samplesPerPixel,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// World-space rows run bottom-up, image rows top-down
		j := height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[y][i]
			for sample := 0; sample < samplesPerPixel; sample++ {
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / sDenom
				t := (float64(j) + jitter.Y) / tDenom

				ray := camera.GetRay(s, t, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
			}
			stats.TotalSamples += samplesPerPixel
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
