package geometry

import (
	"math"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	// Closest approach to the center is 2, larger than the radius
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit != nil {
		t.Errorf("Expected nil record on miss, got %+v", hit)
	}
}

func TestSphere_Hit_DirectlyAtCenter(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		origin    core.Vec3
		direction core.Vec3
	}{
		{"unit direction", core.NewVec3(0, 0, -5), 1.0, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
		{"offset center", core.NewVec3(3, 4, 0), 0.5, core.NewVec3(0, 0, 0), core.NewVec3(3, 4, 0).Normalize()},
		{"small sphere", core.NewVec3(0, 0, -1), 0.5, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, 0)
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expectedT := tt.center.Subtract(tt.origin).Length() - tt.radius
			if math.Abs(hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected nearer root t=%f, got t=%f", expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			// The stored normal always opposes the incoming ray
			if hit.Normal.Dot(ray.Direction) >= 0 {
				t.Errorf("Normal %v should oppose ray direction %v", hit.Normal, ray.Direction)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded by tMin, far root accepted
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on the far side")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
}

func TestSphere_Hit_ExclusiveInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Roots are exactly 1 and 3; both endpoints are excluded
	if hit, isHit := sphere.Hit(ray, 1.0, 3.0); isHit {
		t.Errorf("Roots on the interval endpoints should not count, got t=%f", hit.T)
	}
}

func TestSphere_Hit_RecordsMaterialHandle(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, material.Handle(3))
	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 10)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != 3 {
		t.Errorf("Expected material handle 3, got %d", hit.Material)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-12 {
		t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
	}
}
