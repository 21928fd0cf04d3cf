package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

// minProjection is the smallest distance along the ray to the sphere center
// for which an intersection is considered
const minProjection = 0.01

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float32
	Color  core.Vec3
}

// NewSphere creates a new sphere. Radius must be positive.
func NewSphere(center core.Vec3, radius float32, color core.Vec3) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %v", radius))
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Hit tests if a ray intersects with the sphere and returns the near intersection.
//
// Rays starting inside the sphere are not handled: the near root is returned
// as is, and it lies behind the ray origin.
func (s *Sphere) Hit(ray core.Ray) (core.HitRecord, bool) {
	toSphere := s.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray; center behind or at the origin
	projection := ray.Direction.Dot(toSphere)
	if projection < minProjection {
		return core.HitRecord{}, false
	}

	// Distance from the center to the ray line
	perpendicular := math32.Sqrt(toSphere.LengthSquared() - projection*projection)
	if perpendicular > s.Radius {
		return core.HitRecord{}, false
	}

	halfChord := math32.Sqrt(s.Radius*s.Radius - perpendicular*perpendicular)
	t := projection - halfChord

	return core.HitRecord{
		T:      t,
		Normal: ray.At(t).Subtract(s.Center).Normalize(),
		Color:  s.Color,
	}, true
}
