package geometry

import (
	"github.com/chewxy/math32"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

// parallelEpsilon is the smallest |D·N| for which a plane intersection is computed
const parallelEpsilon = 1e-3

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal vector
	Color  core.Vec3 // Surface color
}

// NewPlane creates a new plane
func NewPlane(point, normal, color core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Color:  color,
	}
}

// Hit tests if a ray intersects with the plane.
// The returned normal is always the plane's own normal; it is not flipped
// to face the incoming ray.
func (p *Plane) Hit(ray core.Ray) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray (nearly) parallel to the plane
	if math32.Abs(denominator) < parallelEpsilon {
		return core.HitRecord{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return core.HitRecord{}, false
	}

	return core.HitRecord{T: t, Normal: p.Normal, Color: p.Color}, true
}
