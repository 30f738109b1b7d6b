package accessor

import (
	"github.com/sirupsen/logrus"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/accessor",
})

// FakeAccessor wraps a real accessor and counts the writes which pass through
// it, so tests can check what a solver did (or didn't) touch.
type FakeAccessor struct {
	skeleton.Accessor

	PositionWrites    map[skeleton.JointID]int
	OrientationWrites map[skeleton.JointID]int
}

func New(acc skeleton.Accessor) *FakeAccessor {
	return &FakeAccessor{
		Accessor:          acc,
		PositionWrites:    map[skeleton.JointID]int{},
		OrientationWrites: map[skeleton.JointID]int{},
	}
}

func (f *FakeAccessor) SetPosition(id skeleton.JointID, p math3d.Vector3) {
	log.Debugf("set position #%d: %s", id, p)
	f.PositionWrites[id]++
	f.Accessor.SetPosition(id, p)
}

func (f *FakeAccessor) SetOrientation(id skeleton.JointID, q math3d.Quaternion) {
	log.Debugf("set orientation #%d: %s", id, q)
	f.OrientationWrites[id]++
	f.Accessor.SetOrientation(id, q)
}

// Writes returns the total number of writes of either kind.
func (f *FakeAccessor) Writes() int {
	n := 0
	for _, c := range f.PositionWrites {
		n += c
	}
	for _, c := range f.OrientationWrites {
		n += c
	}

	return n
}
