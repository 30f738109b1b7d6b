package target

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik"
	"github.com/timonso/ik/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "target",
})

// Orbit moves the target around a circle, so that there's always something
// new to reach for.
type Orbit struct {
	Center math3d.Vector3
	Radius float64

	// Speed is in radians per second.
	Speed float64

	// The circle lies in the plane at right angles to this. Zero means +Z, so
	// the circle is upright and facing the rig.
	Axis math3d.Vector3

	u, v math3d.Vector3
}

func New(center math3d.Vector3, radius, speed float64) *Orbit {
	return &Orbit{
		Center: center,
		Radius: radius,
		Speed:  speed,
	}
}

// Boot works out the plane of the circle.
func (o *Orbit) Boot() error {
	axis := o.Axis
	if axis.Zero() {
		axis = math3d.Vector3{Z: 1}
	}

	q := math3d.Between(math3d.Vector3{Z: 1}, axis)
	o.u = q.Rotate(math3d.Vector3{X: 1})
	o.v = q.Rotate(math3d.Vector3{Y: 1})

	log.Infof("orbiting %s (radius=%.2f, speed=%.2f)", o.Center, o.Radius, o.Speed)
	return nil
}

// Position returns the point on the circle at the given time.
func (o *Orbit) Position(now time.Duration) math3d.Vector3 {
	a := o.Speed * now.Seconds()
	return o.Center.
		Add(o.u.MultiplyByScalar(o.Radius * math.Cos(a))).
		Add(o.v.MultiplyByScalar(o.Radius * math.Sin(a)))
}

func (o *Orbit) Tick(now time.Duration, state *ik.State) error {
	state.Target = o.Position(now)
	return nil
}
