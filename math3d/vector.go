package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

// MakeVector3 returns a new Vector3.
func MakeVector3(x float64, y float64, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// NaN returns true if any component of the vector is NaN. A solver should
// never produce one of these; it's here so tests and callers can check.
func (v Vector3) NaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors, and returns the result.
func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns the vector from vv to v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{
		(v.X * s),
		(v.Y * s),
		(v.Z * s),
	}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return v.vec().Len()
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Unit returns a vector with the same direction as this one and a length of
// one. The unit of the zero vector is the zero vector, rather than NaN, so
// coincident points don't poison everything downstream.
func (v Vector3) Unit() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return ZeroVector3
	}

	return Vector3{v.X / m, v.Y / m, v.Z / m}
}

func (v Vector3) Dot(vv Vector3) float64 {
	return v.vec().Dot(vv.vec())
}

func (v Vector3) Cross(vv Vector3) Vector3 {
	return vector3(v.vec().Cross(vv.vec()))
}

// ApproxEqual returns true if the distance between the two vectors is no more
// than tolerance.
func (v Vector3) ApproxEqual(vv Vector3, tolerance float64) bool {
	return v.Distance(vv) <= tolerance
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vector3(v mgl64.Vec3) Vector3 {
	return Vector3{v.X(), v.Y(), v.Z()}
}
