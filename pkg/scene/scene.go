package scene

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering, so it may be shared by any number of workers.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.HittableList // Objects in the scene
	Materials      *material.Registry     // Materials referenced by the objects
	SamplingConfig core.SamplingConfig
	CameraConfig   geometry.CameraConfig
	TopColor       core.Vec3 // Background color straight up
	BottomColor    core.Vec3 // Background color straight down
}

// NewScene creates an empty scene with a sky-gradient background.
// The camera's aspect ratio follows the sampling config's image size.
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig) *Scene {
	if samplingConfig.Width > 0 && samplingConfig.Height > 0 {
		cameraConfig.AspectRatio = float64(samplingConfig.Width) / float64(samplingConfig.Height)
	}
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewHittableList(),
		Materials:      material.NewRegistry(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}
}

// AddMaterial registers a material and returns its handle
func (s *Scene) AddMaterial(m material.Material) material.Handle {
	return s.Materials.Add(m)
}

// AddSphere adds a sphere bound to a previously registered material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Handle) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// Hit returns the nearest intersection in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// Material resolves a material handle
func (s *Scene) Material(h material.Handle) (material.Material, bool) {
	return s.Materials.Get(h)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// Resize changes the output image size and rebuilds the camera to match its aspect ratio
func (s *Scene) Resize(width, height int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	s.CameraConfig.AspectRatio = float64(width) / float64(height)
	s.Camera = geometry.NewCamera(s.CameraConfig)
}
