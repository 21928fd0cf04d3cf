package geometry

import (
	"math"
	"testing"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"passes beside", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"pointing away", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)},
		{"center too close to origin", core.NewVec3(0, 0, 0.005), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction))
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_NearIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0.6, 0.3, 0.1))
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(float64(hit.T-1)) > 1e-6 {
		t.Errorf("Expected closest intersection at t=1, got t=%f", hit.T)
	}

	tolerance := 1e-6
	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expectedNormal).Length() > float32(tolerance) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
	if hit.Color != sphere.Color {
		t.Errorf("Expected sphere color %v, got %v", sphere.Color, hit.Color)
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	center := core.NewVec3(-0.4, 2, 2)
	var radius float32 = 0.6
	sphere := NewSphere(center, radius, core.NewVec3(1, 1, 1))

	origins := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 1, -3),
		core.NewVec3(-2, 2.2, 0.5),
	}

	for _, origin := range origins {
		// Aim at a point inside the sphere so the ray is known to pass through it
		target := center.Add(core.NewVec3(0.1, -0.2, 0.15))
		ray := core.NewRay(origin, target.Subtract(origin).Normalize())

		hit, isHit := sphere.Hit(ray)
		if !isHit {
			t.Fatalf("Expected hit from %v, but got miss", origin)
		}

		distance := ray.At(hit.T).Subtract(center).Length()
		if math.Abs(float64(distance-radius)) > 1e-4 {
			t.Errorf("Hit point from %v is %f from center, expected radius %f", origin, distance, radius)
		}
		if math.Abs(float64(hit.Normal.Length())-1) > 1e-5 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if ray.At(hit.T).Subtract(expectedPoint).Length() > 1e-5 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, ray.At(hit.T))
	}
}

// An origin inside the sphere still yields the near root, which lies behind the origin.
func TestSphere_Hit_OriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 1), 1.0, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected near-root hit, but got miss")
	}
	if math.Abs(float64(hit.T+0.5)) > 1e-6 {
		t.Errorf("Expected near root t=-0.5, got t=%f", hit.T)
	}
}

func TestNewSphere_NonPositiveRadiusPanics(t *testing.T) {
	for _, radius := range []float32{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for radius %f", radius)
				}
			}()
			NewSphere(core.NewVec3(0, 0, 0), radius, core.NewVec3(1, 1, 1))
		}()
	}
}
