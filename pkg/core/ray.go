package core

import "fmt"

// Ray represents a ray with an origin and direction.
// Start and Direction point at vectors owned by the caller; a Ray only reads them.
type Ray struct {
	Start     *Vec3H
	Direction *Vec3H
}

// NewRay creates a new ray over existing vectors
func NewRay(start, direction *Vec3H) Ray {
	return Ray{Start: start, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3H {
	return r.Start.Add(r.Direction.Scale(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("ray(%v -> %v)", r.Start, r.Direction)
}
