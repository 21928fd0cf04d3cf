package scene

import (
	"github.com/OB11TO/Computer-Graphics/pkg/core"
	"github.com/OB11TO/Computer-Graphics/pkg/geometry"
)

// noHitDistance is the initial best distance of a nearest-hit query
const noHitDistance = 1e9

// Scene contains all the elements needed for rendering.
// A Scene is immutable once constructed and safe for concurrent use.
type Scene struct {
	shapes []core.Shape // Query order: planes first, then spheres
	light  core.Vec3
}

// NewScene creates a scene from planes, spheres and a point light position
func NewScene(planes []*geometry.Plane, spheres []*geometry.Sphere, light core.Vec3) *Scene {
	shapes := make([]core.Shape, 0, len(planes)+len(spheres))
	for _, p := range planes {
		shapes = append(shapes, p)
	}
	for _, sp := range spheres {
		shapes = append(shapes, sp)
	}
	return &Scene{shapes: shapes, light: light}
}

// LightPosition returns the position of the point light
func (s *Scene) LightPosition() core.Vec3 {
	return s.light
}

// Trace returns the nearest hit along the ray.
// Only hits with 0 < t are accepted; on exact ties the first shape
// in query order wins.
func (s *Scene) Trace(ray core.Ray) (core.HitRecord, bool) {
	var closest core.HitRecord
	closestSoFar := float32(noHitDistance)
	hitAnything := false

	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray); ok && hit.T > 0 && hit.T < closestSoFar {
			closestSoFar = hit.T
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}
