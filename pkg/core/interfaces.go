package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T      float32 // Distance along the ray, always > 0 for a reported hit
	Normal Vec3    // Unit surface normal at the hit point
	Color  Vec3    // Surface color of the primitive that was hit
}

// Shape interface for primitives that can be hit by rays
type Shape interface {
	Hit(ray Ray) (HitRecord, bool)
}

// Scene is the read-only view of a scene the renderer needs
type Scene interface {
	Trace(ray Ray) (HitRecord, bool)
	LightPosition() Vec3
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
