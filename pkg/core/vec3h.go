package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxCoverage is the ceiling of the coverage channel under addition
const MaxCoverage = 1.0

// Vec3H represents a 3D vector with a fourth coverage channel W.
// W accumulates how "complete" a quantity is and saturates at MaxCoverage.
type Vec3H struct {
	X, Y, Z, W float64
}

// NewVec3H creates a new Vec3H with zero coverage
func NewVec3H(x, y, z float64) Vec3H {
	return Vec3H{X: x, Y: y, Z: z}
}

// Scale returns the vector with X, Y and Z multiplied by k. W is unchanged.
func (v Vec3H) Scale(k float64) Vec3H {
	return Vec3H{v.X * k, v.Y * k, v.Z * k, v.W}
}

// Add returns the sum of two vectors. Coverage is summed and capped at MaxCoverage.
func (v Vec3H) Add(other Vec3H) Vec3H {
	return Vec3H{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: min(v.W+other.W, MaxCoverage),
	}
}

// Subtract returns v + other.Scale(-1).
//
// Scale leaves W alone, so the resulting coverage is min(v.W+other.W, 1),
// the same as Add. Callers relying on a coverage difference must compute it
// themselves.
func (v Vec3H) Subtract(other Vec3H) Vec3H {
	return v.Add(other.Scale(-1.0))
}

// Dot returns the dot product of the spatial components
func (v Vec3H) Dot(other Vec3H) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors. The result has zero coverage.
func (v Vec3H) Cross(other Vec3H) Vec3H {
	return NewVec3H(
		v.Y*other.Z-other.Y*v.Z,
		v.Z*other.X-other.Z*v.X,
		v.X*other.Y-other.X*v.Y,
	)
}

// LengthSquared returns the squared magnitude of the spatial components
func (v Vec3H) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the spatial components
func (v Vec3H) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// IsZero reports whether all spatial components are zero
func (v Vec3H) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns a unit vector in the same direction, carrying W through.
// A zero vector has no direction and yields NaN components; use
// NormalizeChecked when the input may be degenerate.
func (v Vec3H) Normalize() Vec3H {
	length := v.Length()
	return Vec3H{v.X / length, v.Y / length, v.Z / length, v.W}
}

// NormalizeChecked is Normalize with a zero-length guard
func (v Vec3H) NormalizeChecked() (Vec3H, error) {
	if v.IsZero() {
		return Vec3H{}, &DegenerateVectorError{Vector: v}
	}
	return v.Normalize(), nil
}

// String renders the spatial components as "(x, y, z)". W is not shown.
func (v Vec3H) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// R3 converts the spatial part to a gonum vector
func (v Vec3H) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 builds a Vec3H from a gonum vector and a coverage value
func FromR3(p r3.Vec, w float64) Vec3H {
	return Vec3H{p.X, p.Y, p.Z, w}
}

// Vec4 returns the homogeneous form (x, y, z, w)
func (v Vec3H) Vec4() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromVec4 builds a Vec3H from a homogeneous mathgl vector
func FromVec4(h mgl64.Vec4) Vec3H {
	return Vec3H{h[0], h[1], h[2], h[3]}
}
