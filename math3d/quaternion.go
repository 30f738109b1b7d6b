package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Directions closer than this (in cosine) are treated as parallel.
const parallelEpsilon = 1e-12

// Quaternion is a rotation. Only unit quaternions are meaningful here.
type Quaternion mgl64.Quat

var (
	IdentityOrientation = Quaternion(mgl64.QuatIdent())
)

func MakeQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, V: mgl64.Vec3{x, y, z}}
}

// AxisAngle returns the rotation of angle radians around the given axis. The
// axis needn't be normalized. A zero axis is the identity.
func AxisAngle(axis Vector3, angle float64) Quaternion {
	u := axis.Unit()
	if u.Zero() {
		return IdentityOrientation
	}

	return Quaternion(mgl64.QuatRotate(angle, u.vec()))
}

// Between returns the shortest rotation which turns the direction of from onto
// the direction of to. If either vector is zero, there is no direction to
// speak of, so the identity is returned. Opposite vectors yield a half turn
// around an arbitrary perpendicular axis.
func Between(from, to Vector3) Quaternion {
	a := from.Unit()
	b := to.Unit()
	if a.Zero() || b.Zero() {
		return IdentityOrientation
	}

	d := a.Dot(b)
	if d >= 1-parallelEpsilon {
		return IdentityOrientation
	}

	if d <= -1+parallelEpsilon {
		axis := Vector3{X: 1}.Cross(a)
		if axis.Magnitude() < 1e-6 {
			axis = Vector3{Y: 1}.Cross(a)
		}
		return AxisAngle(axis, math.Pi)
	}

	axis := a.Cross(b)
	s := math.Sqrt((1 + d) * 2)
	q := Quaternion{W: s / 2, V: axis.MultiplyByScalar(1 / s).vec()}
	return q.Normalize()
}

// Slerp interpolates from a (at t=0) to b (at t=1) along the shortest arc.
func Slerp(a, b Quaternion, t float64) Quaternion {
	if a.Dot(b) < 0 {
		b = b.Negate()
	}

	return Quaternion(mgl64.QuatSlerp(mgl64.Quat(a), mgl64.Quat(b), t)).Normalize()
}

func (q Quaternion) String() string {
	return fmt.Sprintf("&Quat{w=%+.4f x=%+.4f y=%+.4f z=%+.4f}", q.W, q.V[0], q.V[1], q.V[2])
}

// Multiply returns q*qq, i.e. the rotation qq followed by q.
func (q Quaternion) Multiply(qq Quaternion) Quaternion {
	return Quaternion(mgl64.Quat(q).Mul(mgl64.Quat(qq)))
}

// Rotate returns v rotated by q.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return vector3(mgl64.Quat(q).Rotate(v.vec()))
}

func (q Quaternion) Inverse() Quaternion {
	return Quaternion(mgl64.Quat(q).Inverse())
}

func (q Quaternion) Normalize() Quaternion {
	return Quaternion(mgl64.Quat(q).Normalize())
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{W: -q.W, V: q.V.Mul(-1)}
}

func (q Quaternion) Dot(qq Quaternion) float64 {
	return mgl64.Quat(q).Dot(mgl64.Quat(qq))
}

// Angle returns the (positive) angle of the rotation in radians.
func (q Quaternion) Angle() float64 {
	n := q.Normalize()
	return 2 * math.Atan2(n.V.Len(), math.Abs(n.W))
}

// NaN returns true if any of the components is NaN.
func (q Quaternion) NaN() bool {
	return math.IsNaN(q.W) || math.IsNaN(q.V[0]) || math.IsNaN(q.V[1]) || math.IsNaN(q.V[2])
}

// ApproxEqual returns true if both quaternions describe (nearly) the same
// rotation. q and -q are the same rotation.
func (q Quaternion) ApproxEqual(qq Quaternion, tolerance float64) bool {
	return q.Multiply(qq.Inverse()).Angle() <= tolerance
}
