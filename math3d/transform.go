package math3d

import (
	"fmt"
)

// Transform is a rigid transform: a rotation followed by a translation.
type Transform struct {
	Position Vector3
	Rotation Quaternion
}

var (
	IdentityTransform = Transform{Rotation: IdentityOrientation}
)

func (t Transform) String() string {
	return fmt.Sprintf("Transform{x=%+07.2f y=%+07.2f z=%+07.2f, r=%s}", t.Position.X, t.Position.Y, t.Position.Z, t.Rotation)
}

// Compose returns the transform tt, which is relative to t, in the space that
// t is relative to. For a joint, this turns a parent-relative transform into a
// world transform given the parent's world transform.
func (t Transform) Compose(tt Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(tt.Position)),
		Rotation: t.Rotation.Multiply(tt.Rotation).Normalize(),
	}
}

// Relative is the inverse of Compose: it returns tt expressed relative to t.
func (t Transform) Relative(tt Transform) Transform {
	inv := t.Rotation.Inverse()
	return Transform{
		Position: inv.Rotate(tt.Position.Subtract(t.Position)),
		Rotation: inv.Multiply(tt.Rotation).Normalize(),
	}
}

// Apply transforms a point from the local space of t into its parent space.
func (t Transform) Apply(v Vector3) Vector3 {
	return t.Position.Add(t.Rotation.Rotate(v))
}
