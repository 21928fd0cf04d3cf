package scene

import (
	"errors"
	"fmt"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
	"github.com/OB11TO/Computer-Graphics/pkg/geometry"
)

// ReferenceSceneID selects the reference scene
const ReferenceSceneID = 1

// ErrUnknownScene is returned for scene ids that have no scene
var ErrUnknownScene = errors.New("unknown scene")

// NewReferenceScene creates the reference scene: two tilted black planes
// meeting behind a large white sphere, a small brown sphere above it, and
// a point light at (2, 2, 0)
func NewReferenceScene() *Scene {
	black := core.NewVec3(0, 0, 0)

	planes := []*geometry.Plane{
		geometry.NewPlane(core.NewVec3(-1, -1, 0), core.NewVec3(0, 1, -0.125), black),
		geometry.NewPlane(core.NewVec3(-1, -1, 0), core.NewVec3(1, 0, -0.125), black),
	}

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 2), 1, core.NewVec3(1.0, 1.0, 1.0)),
		geometry.NewSphere(core.NewVec3(-0.4, 2, 2), 0.6, core.NewVec3(0.6, 0.3, 0.1)),
	}

	return NewScene(planes, spheres, core.NewVec3(2, 2, 0))
}

// ByID returns the scene registered under id
func ByID(id int) (*Scene, error) {
	switch id {
	case ReferenceSceneID:
		return NewReferenceScene(), nil
	default:
		return nil, fmt.Errorf("scene %d: %w", id, ErrUnknownScene)
	}
}
