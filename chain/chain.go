package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/timonso/ik/skeleton"
)

var (
	ErrUnknownJoint = errors.New("unknown joint")
	ErrNotDescended = errors.New("joint does not descend from the previous one")
)

// Chain is an ordered list of joints, conventionally root to tip, which one
// solve drives toward a target. Building one resolves names to handles, so
// keep it around rather than rebuilding it every frame.
type Chain struct {
	ids   []skeleton.JointID
	names []string
}

// New resolves the given joint names against the accessor. If any of them
// doesn't exist, no chain is returned. Membership and order are up to the
// caller; see CheckHierarchy.
func New(acc skeleton.Accessor, names ...string) (Chain, error) {
	c := Chain{
		ids:   make([]skeleton.JointID, 0, len(names)),
		names: make([]string, 0, len(names)),
	}

	for _, name := range names {
		if !acc.Has(name) {
			return Chain{}, fmt.Errorf("%w: %s", ErrUnknownJoint, name)
		}

		// Sockets exist, but aren't joints, so can't be driven.
		id, ok := acc.Lookup(name)
		if !ok {
			return Chain{}, fmt.Errorf("%w: %s is a socket", ErrUnknownJoint, name)
		}

		c.ids = append(c.ids, id)
		c.names = append(c.names, name)
	}

	return c, nil
}

func (c Chain) Len() int {
	return len(c.ids)
}

func (c Chain) Empty() bool {
	return len(c.ids) == 0
}

// Joint returns the handle of the i'th joint.
func (c Chain) Joint(i int) skeleton.JointID {
	return c.ids[i]
}

func (c Chain) Name(i int) string {
	return c.names[i]
}

// Joints returns a copy of the handles in chain order.
func (c Chain) Joints() []skeleton.JointID {
	return append([]skeleton.JointID(nil), c.ids...)
}

func (c Chain) Names() []string {
	return append([]string(nil), c.names...)
}

// Tip returns the last joint in the chain. The chain must not be empty.
func (c Chain) Tip() skeleton.JointID {
	return c.ids[len(c.ids)-1]
}

// CheckHierarchy returns an error unless each joint is a (possibly indirect)
// descendant of the one before it.
func (c Chain) CheckHierarchy(acc skeleton.Accessor) error {
	for i := 1; i < len(c.ids); i++ {
		if !descends(acc, c.ids[i], c.ids[i-1]) {
			return fmt.Errorf("%w: %s is not below %s", ErrNotDescended, c.names[i], c.names[i-1])
		}
	}

	return nil
}

func (c Chain) String() string {
	return fmt.Sprintf("&Chain{%s}", strings.Join(c.names, " -> "))
}

func descends(acc skeleton.Accessor, id, ancestor skeleton.JointID) bool {
	for {
		p, ok := acc.Parent(id)
		if !ok {
			return false
		}
		if p == ancestor {
			return true
		}
		id = p
	}
}
