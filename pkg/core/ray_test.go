package core

import (
	"math/rand"
	"testing"
)

func TestRay_At(t *testing.T) {
	start := NewVec3H(0, 0, 0)
	direction := NewVec3H(1, 1, 1)
	r := NewRay(&start, &direction)

	tests := []struct {
		name     string
		t        float64
		expected Vec3H
	}{
		{"origin", 0.0, NewVec3H(0, 0, 0)},
		{"unit step", 1.0, NewVec3H(1, 1, 1)},
		{"half step", 0.5, NewVec3H(0.5, 0.5, 0.5)},
		{"backwards", -2.0, NewVec3H(-2, -2, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := r.At(tt.t); result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRay_AtMatchesAdd(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		start, direction := randomVec3H(random), randomVec3H(random)
		r := NewRay(&start, &direction)

		at0 := r.At(0)
		if at0.X != start.X || at0.Y != start.Y || at0.Z != start.Z {
			t.Fatalf("At(0) = %v, expected %v", at0, start)
		}
		if at1 := r.At(1); at1 != start.Add(direction) {
			t.Fatalf("At(1) = %#v, expected %#v", at1, start.Add(direction))
		}
	}
}

func TestRay_DoesNotModifyEndpoints(t *testing.T) {
	start := Vec3H{1, 2, 3, 0.5}
	direction := Vec3H{0, 0, -1, 0.75}
	r := NewRay(&start, &direction)

	_ = r.At(10)

	if start != (Vec3H{1, 2, 3, 0.5}) || direction != (Vec3H{0, 0, -1, 0.75}) {
		t.Errorf("Ray modified its endpoints: %#v, %#v", start, direction)
	}
	if r.Start != &start || r.Direction != &direction {
		t.Error("Ray should reference the caller's vectors")
	}
}

func TestRay_String(t *testing.T) {
	start := NewVec3H(0, 0, 0)
	direction := NewVec3H(1, 0, 0)
	if s := NewRay(&start, &direction).String(); s != "ray((0, 0, 0) -> (1, 0, 0))" {
		t.Errorf("Unexpected ray string %q", s)
	}
}
