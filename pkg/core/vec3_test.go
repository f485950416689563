package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
		{"Lerp", NewVec3(1, 1, 1).Lerp(NewVec3(0.5, 0.7, 1.0), 0.5), NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(2, 3, 6)

	if got := v.Dot(NewVec3(1, 1, 1)); got != 11 {
		t.Errorf("Expected dot 11, got %f", got)
	}
	if got := v.LengthSquared(); got != 49 {
		t.Errorf("Expected squared length 49, got %f", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Expected length 7, got %f", got)
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", unit.Length())
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	v := Vec3{}.Normalize()
	if !math.IsNaN(v.X) {
		t.Errorf("Normalizing the zero vector should produce NaN, got %v", v)
	}
}

func TestVec3_Index(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for i, expected := range []float64{7, 8, 9} {
		if got := v.Index(i); got != expected {
			t.Errorf("Index(%d): expected %f, got %f", i, expected, got)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Index(3) should panic")
		}
	}()
	v.Index(3)
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)

	got := Reflect(v, n)
	expected := NewVec3(1, 1, 0).Normalize()

	if !vecNear(got, expected, 1e-12) {
		t.Errorf("Expected reflection %v, got %v", expected, got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("unit ratio keeps direction", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		got := Refract(uv, n, 1.0)
		if !vecNear(got, uv, 1e-12) {
			t.Errorf("Expected %v, got %v", uv, got)
		}
	})

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		uv := NewVec3(0, -1, 0)
		got := Refract(uv, n, 1.0/1.5)
		if !vecNear(got, uv, 1e-12) {
			t.Errorf("Expected %v, got %v", uv, got)
		}
	})

	t.Run("bends toward normal entering denser medium", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		eta := 1.0 / 1.5
		got := Refract(uv, n, eta)

		// Snell: sin(out) = eta * sin(in)
		sinIn := uv.X
		sinOut := got.X / got.Length()
		if math.Abs(sinOut-eta*sinIn) > 1e-12 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-12 {
			t.Errorf("Refracted unit vector should stay unit length, got %f", got.Length())
		}
	})
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); !got.Equals(ray.Origin) {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
	if got := ray.At(1.5); !vecNear(got, NewVec3(1, 2, 0), 1e-12) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}
