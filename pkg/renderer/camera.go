package renderer

import "github.com/OB11TO/Computer-Graphics/pkg/core"

// Camera generates primary rays from a fixed eye point through a pixel grid
// spanning [-1, 1) on the X (rows) and Y (columns) axes at z = 1
type Camera struct {
	eye        core.Vec3
	halfHeight float64
	halfWidth  float64
}

// NewCamera creates a camera for a height x width pixel grid
func NewCamera(eye core.Vec3, width, height int) *Camera {
	return &Camera{
		eye:        eye,
		halfHeight: float64(height) / 2,
		halfWidth:  float64(width) / 2,
	}
}

// GetRay generates the unit-direction primary ray for pixel (row, col)
func (c *Camera) GetRay(row, col int) core.Ray {
	direction := core.NewVec3(
		float32(float64(row)/c.halfHeight-1),
		float32(float64(col)/c.halfWidth-1),
		1,
	)
	return core.NewRay(c.eye, direction.Normalize())
}
