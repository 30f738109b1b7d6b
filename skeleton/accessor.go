package skeleton

import (
	"github.com/timonso/ik/math3d"
)

// JointID is a handle to a joint within one skeleton. Names are translated to
// handles once, at the boundary, by Lookup.
type JointID int

// NoJoint is returned alongside false when there is no such joint.
const NoJoint JointID = -1

// Accessor is everything a solver needs from the skeleton it's driving. All
// positions and orientations are in world space. Passing a handle which
// didn't come from Lookup on the same accessor is a programming error.
type Accessor interface {
	Lookup(name string) (JointID, bool)

	// Has returns true if there is a joint or a socket with the given name.
	Has(name string) bool

	Position(id JointID) math3d.Vector3
	Orientation(id JointID) math3d.Quaternion
	Parent(id JointID) (JointID, bool)

	SetPosition(id JointID, p math3d.Vector3)
	SetOrientation(id JointID, q math3d.Quaternion)
}
