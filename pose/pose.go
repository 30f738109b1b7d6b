package pose

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

var ErrStaleBaseline = errors.New("baseline was captured from a different skeleton")

var log = logrus.WithFields(logrus.Fields{
	"pkg": "pose",
})

// Poser is the part of a skeleton which animations need. Rotations are
// relative to the parent joint.
type Poser interface {
	Len() int
	Lookup(name string) (skeleton.JointID, bool)
	LocalRotation(id skeleton.JointID) math3d.Quaternion
	SetLocalRotation(id skeleton.JointID, q math3d.Quaternion)
}

// Baseline is a snapshot of every joint's rotation, which animations play
// relative to, and which can be put back when they stop.
type Baseline struct {
	rotations []math3d.Quaternion
}

// Capture stores the current rotation of every joint.
func Capture(src Poser) *Baseline {
	b := &Baseline{rotations: make([]math3d.Quaternion, src.Len())}
	for i := range b.rotations {
		b.rotations[i] = src.LocalRotation(skeleton.JointID(i))
	}

	log.Debugf("captured baseline of %d joints", len(b.rotations))
	return b
}

func (b *Baseline) Len() int {
	return len(b.rotations)
}

// Rotation returns the captured rotation of the given joint.
func (b *Baseline) Rotation(id skeleton.JointID) math3d.Quaternion {
	return b.rotations[id]
}

// Restore puts every joint back the way it was when the baseline was captured.
func (b *Baseline) Restore(dst Poser) error {
	if err := b.check(dst); err != nil {
		return err
	}

	for i, q := range b.rotations {
		dst.SetLocalRotation(skeleton.JointID(i), q)
	}

	return nil
}

func (b *Baseline) check(p Poser) error {
	if b == nil || len(b.rotations) != p.Len() {
		n := 0
		if b != nil {
			n = len(b.rotations)
		}
		return fmt.Errorf("%w (have %d joints, skeleton has %d)", ErrStaleBaseline, n, p.Len())
	}

	return nil
}

// Animation is a procedural pose, played relative to a baseline. Apply is
// called once per frame with the time since the animation started. Joints
// which the skeleton doesn't have are skipped.
type Animation interface {
	Name() string
	Apply(p Poser, base *Baseline, t time.Duration) error
}

// Defaults returns the built-in animations, which drive the right arm of the
// mannequin.
func Defaults() []Animation {
	return []Animation{
		NewWave(),
		NewHandToHeart(),
		NewStartingPose(),
	}
}

// ByName returns the named animation from the given list.
func ByName(anims []Animation, name string) (Animation, bool) {
	for _, a := range anims {
		if a.Name() == name {
			return a, true
		}
	}

	return nil, false
}

func lookup(p Poser, anim string, name string) (skeleton.JointID, bool) {
	id, ok := p.Lookup(name)
	if !ok {
		log.WithField("anim", anim).Warnf("joint %s not found", name)
	}

	return id, ok
}
