package skeleton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik/math3d"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrUnknownParent = errors.New("unknown parent")
	ErrUnknownJoint  = errors.New("unknown joint")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "skeleton",
})

type joint struct {
	name   string
	parent JointID

	// The transform of this joint relative to its parent. For the root, this
	// is relative to the world.
	local math3d.Transform
}

// A socket is a named point attached to a joint. It can't be driven, but it
// can be looked up, like a joint.
type socket struct {
	joint  JointID
	offset math3d.Vector3
}

// Skeleton is a tree of joints. Each joint is stored relative to its parent,
// so moving or rotating a joint carries all of its descendants along with it.
type Skeleton struct {
	joints  []joint
	index   map[string]JointID
	sockets map[string]socket
}

func New() *Skeleton {
	return &Skeleton{
		index:   map[string]JointID{},
		sockets: map[string]socket{},
	}
}

// AddJoint adds a joint with the given transform relative to its parent. An
// empty parent name makes a root joint. Parents must be added before their
// children.
func (s *Skeleton) AddJoint(name string, parent string, local math3d.Transform) (JointID, error) {
	if s.Has(name) {
		return NoJoint, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	p := NoJoint
	if parent != "" {
		var ok bool
		p, ok = s.index[parent]
		if !ok {
			return NoJoint, fmt.Errorf("%w: %s (while adding joint %s)", ErrUnknownParent, parent, name)
		}
	}

	id := JointID(len(s.joints))
	s.joints = append(s.joints, joint{name: name, parent: p, local: local})
	s.index[name] = id
	return id, nil
}

// AddSocket attaches a named point to an existing joint.
func (s *Skeleton) AddSocket(name string, jointName string, offset math3d.Vector3) error {
	if s.Has(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	id, ok := s.index[jointName]
	if !ok {
		return fmt.Errorf("%w: %s (while adding socket %s)", ErrUnknownJoint, jointName, name)
	}

	s.sockets[name] = socket{joint: id, offset: offset}
	return nil
}

// Len returns the number of joints, not counting sockets.
func (s *Skeleton) Len() int {
	return len(s.joints)
}

func (s *Skeleton) Name(id JointID) string {
	return s.joints[id].name
}

// Names returns the names of all joints, in the order they were added.
func (s *Skeleton) Names() []string {
	names := make([]string, len(s.joints))
	for i, j := range s.joints {
		names[i] = j.name
	}

	return names
}

func (s *Skeleton) Lookup(name string) (JointID, bool) {
	id, ok := s.index[name]
	if !ok {
		return NoJoint, false
	}

	return id, true
}

func (s *Skeleton) Has(name string) bool {
	if _, ok := s.index[name]; ok {
		return true
	}

	_, ok := s.sockets[name]
	return ok
}

func (s *Skeleton) Parent(id JointID) (JointID, bool) {
	p := s.joints[id].parent
	return p, p != NoJoint
}

// World returns the transform of the joint in world space, by composing the
// local transforms from the root down.
func (s *Skeleton) World(id JointID) math3d.Transform {
	j := s.joints[id]
	if j.parent == NoJoint {
		return j.local
	}

	return s.World(j.parent).Compose(j.local)
}

func (s *Skeleton) Position(id JointID) math3d.Vector3 {
	return s.World(id).Position
}

func (s *Skeleton) Orientation(id JointID) math3d.Quaternion {
	return s.World(id).Rotation
}

// SetOrientation rotates the joint (and therefore its descendants) so that its
// world orientation becomes q. The joint itself stays where it is.
func (s *Skeleton) SetOrientation(id JointID, q math3d.Quaternion) {
	w := s.parentWorld(id)
	s.joints[id].local.Rotation = w.Rotation.Inverse().Multiply(q).Normalize()
}

// SetPosition moves the joint (and therefore its descendants) so that its
// world position becomes p. Its orientation is unchanged.
func (s *Skeleton) SetPosition(id JointID, p math3d.Vector3) {
	w := s.parentWorld(id)
	s.joints[id].local.Position = w.Rotation.Inverse().Rotate(p.Subtract(w.Position))
}

// Local returns the transform of the joint relative to its parent.
func (s *Skeleton) Local(id JointID) math3d.Transform {
	return s.joints[id].local
}

func (s *Skeleton) LocalRotation(id JointID) math3d.Quaternion {
	return s.joints[id].local.Rotation
}

func (s *Skeleton) SetLocalRotation(id JointID, q math3d.Quaternion) {
	s.joints[id].local.Rotation = q.Normalize()
}

// SocketPosition returns the world position of the named socket.
func (s *Skeleton) SocketPosition(name string) (math3d.Vector3, bool) {
	sock, ok := s.sockets[name]
	if !ok {
		return math3d.ZeroVector3, false
	}

	return s.World(sock.joint).Apply(sock.offset), true
}

// Clone returns a deep copy of the skeleton.
func (s *Skeleton) Clone() *Skeleton {
	c := New()
	c.joints = append([]joint(nil), s.joints...)
	for k, v := range s.index {
		c.index[k] = v
	}
	for k, v := range s.sockets {
		c.sockets[k] = v
	}

	return c
}

func (s *Skeleton) String() string {
	parts := make([]string, len(s.joints))
	for i, j := range s.joints {
		parts[i] = fmt.Sprintf("%s@%s", j.name, s.Position(JointID(i)))
	}

	return fmt.Sprintf("&Skel{%s}", strings.Join(parts, " "))
}

func (s *Skeleton) parentWorld(id JointID) math3d.Transform {
	p := s.joints[id].parent
	if p == NoJoint {
		return math3d.IdentityTransform
	}

	return s.World(p)
}
