package scene

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// NewDefaultScene creates a scene with a large ground sphere and three feature spheres
// (glass, diffuse, metal) plus a hollow glass bubble
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
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

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	air := s.AddMaterial(material.NewDielectric(1.0 / 1.5))
	brown := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	bronze := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	blue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown)
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, bronze)

	// Bubble: glass shell with an air pocket, a small blue sphere inside
	s.AddSphere(core.NewVec3(2, 0.5, 2), 0.5, glass)
	s.AddSphere(core.NewVec3(2, 0.5, 2), 0.45, air)
	s.AddSphere(core.NewVec3(2, 0.5, 2), 0.2, blue)

	return s
}

// NewSingleSphereScene creates a single diffuse sphere at (0,0,-1) resting on a large
// ground sphere, seen by a pinhole camera at the origin looking down -Z
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, core.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 50,
		MaxDepth:        50,
	})

	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return s
}
