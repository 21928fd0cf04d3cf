package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}

	v := NewVec3(3, 4, 0)
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(0, 1, -0.125),
		NewVec3(-2, 7, 11),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(float64(n.Length())-1) > 1e-6 {
			t.Errorf("Normalize(%v) has length %f, expected 1", v, n.Length())
		}
		// Direction is preserved
		if n.Dot(v) <= 0 {
			t.Errorf("Normalize(%v) = %v points away from the input", v, n)
		}
	}
}

func TestVec3_Immutable(t *testing.T) {
	v := NewVec3(1, 2, 3)
	_ = v.Add(NewVec3(1, 1, 1))
	_ = v.Multiply(10)
	_ = v.Normalize()

	if v != NewVec3(1, 2, 3) {
		t.Errorf("Operations mutated receiver: %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, -1), NewVec3(0, 0, 1))

	if got := ray.At(3); got != NewVec3(0, 0, 2) {
		t.Errorf("Expected (0,0,2), got %v", got)
	}
}
