package integrator

import (
	"math"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// ShadowEpsilon is the minimum hit distance, keeping bounced rays from re-hitting
// the surface they start on
const ShadowEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with one scattered
// ray per bounce and a hard depth cutoff
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray, bouncing at most MaxDepth times
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.Shade(ray, scene, sampler, pt.config.MaxDepth)
}

// Shade returns the radiance along ray with depth bounces remaining
func (pt *PathTracingIntegrator) Shade(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := scene.Hit(ray, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return BackgroundGradient(ray, scene.TopColor, scene.BottomColor)
	}

	mat, ok := scene.Material(hit.Material)
	if !ok {
		// Dangling handle: treat the surface as a perfect absorber
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := mat.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.Shade(scatter.Scattered, scene, sampler, depth-1))
}

// BackgroundGradient blends bottomColor into topColor by the height of the ray direction
func BackgroundGradient(ray core.Ray, topColor, bottomColor core.Vec3) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
