package material

import (
	"math"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

func TestDielectric_UnitIndexDoesNotBend(t *testing.T) {
	glass := NewDielectric(1.0)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0.3, -2, 0.4),
	}

	for _, dir := range directions {
		rayIn := core.NewRay(core.NewVec3(0, 1, 0), dir)

		// A draw of 0.999 is never below the Schlick reflectance here, so the ray refracts
		scatter, didScatter := glass.Scatter(rayIn, hit, newScriptedSampler(0.999))
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}

		expected := dir.Normalize()
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Index 1.0 should not bend light: expected %v, got %v", expected, scatter.Scattered.Direction)
		}
		if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Errorf("Dielectric attenuation should be white, got %v", scatter.Attenuation)
		}
	}
}

func TestDielectric_SchlickBranch(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Normal incidence: reflectance is r0 = ((1-1/1.5)/(1+1/1.5))^2 = 0.04
	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		{"draw below reflectance reflects", 0.01, core.NewVec3(0, 1, 0)},
		{"draw above reflectance refracts", 0.5, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := newScriptedSampler(tt.draw)
			scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
			if !didScatter {
				t.Fatal("Dielectric should always scatter")
			}
			if scatter.Scattered.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, scatter.Scattered.Direction)
			}
			if sampler.calls != 1 {
				t.Errorf("Expected exactly one random draw, got %d", sampler.calls)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving the glass at a shallow angle: 1.5 * sin(theta) > 1
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}
	rayIn := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	sampler := newScriptedSampler(0.999)

	scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.NewVec3(1, 0.1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if sampler.calls != 0 {
		t.Errorf("Total internal reflection should not consume a random draw, got %d", sampler.calls)
	}
}

func TestDielectric_RefractionFollowsSnell(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	dir := core.NewVec3(1, -1, 0).Normalize()
	scatter, _ := glass.Scatter(core.NewRay(core.NewVec3(-1, 1, 0), dir), hit, newScriptedSampler(0.999))

	out := scatter.Scattered.Direction.Normalize()
	sinIn := dir.X
	sinOut := out.X
	if math.Abs(sinOut-sinIn/1.5) > 1e-12 {
		t.Errorf("Expected sin(out) = %f, got %f", sinIn/1.5, sinOut)
	}
	if out.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", out)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched index", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
