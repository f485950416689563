package scene

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// DefaultRandomSeed seeds NewRandomScene when no seed is given
const DefaultRandomSeed int64 = 42

// NewRandomScene creates the cover scene: a 22x22 grid of small randomly placed spheres
// with random materials around three large spheres. The layout depends only on seed.
func NewRandomScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, core.SamplingConfig{
		Width:           384,
		Height:          216,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	sampler := core.NewSeededSampler(seed)

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	// One glass material is shared by every small glass sphere and the large one
	glass := s.AddMaterial(material.NewDielectric(1.5))
	keepClear := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, 0.2, float64(b)+0.9*offset.Y)

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat material.Handle
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomColor(sampler, 0, 1).MultiplyVec(core.RandomColor(sampler, 0, 1))
				mat = s.AddMaterial(material.NewLambertian(albedo))
			case chooseMat < 0.95:
				albedo := core.RandomColor(sampler, 0.5, 1)
				fuzz := 0.5 * sampler.Get1D()
				mat = s.AddMaterial(material.NewMetal(albedo, fuzz))
			default:
				mat = glass
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
