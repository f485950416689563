package geometry

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the intersection with the smallest t in the open interval (tMin, tMax).
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
