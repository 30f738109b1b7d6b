package animate

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik"
	"github.com/timonso/ik/pose"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "animate",
})

type track struct {
	anim  pose.Animation
	start Latch
	stop  Latch

	// When the animation last started playing.
	since time.Duration
}

// Animate plays the animations which are flagged in the shared state. Each
// one starts from the pose the skeleton was in at boot, and that pose is put
// back whenever any animation starts or stops.
type Animate struct {
	p      pose.Poser
	tracks []*track
	base   *pose.Baseline
}

func New(p pose.Poser, anims ...pose.Animation) *Animate {
	a := &Animate{p: p}
	for _, anim := range anims {
		// Nothing is playing before the first frame, so that isn't an edge.
		a.tracks = append(a.tracks, &track{anim: anim, stop: Latch{val: true}})
	}

	return a
}

// Boot captures the baseline pose.
func (a *Animate) Boot() error {
	a.base = pose.Capture(a.p)
	return nil
}

// Baseline returns the pose captured at boot.
func (a *Animate) Baseline() *pose.Baseline {
	return a.base
}

func (a *Animate) Tick(now time.Duration, state *ik.State) error {
	if a.base == nil {
		return errors.New("not booted")
	}

	restore := false
	for _, t := range a.tracks {
		on := state.Playing(t.anim.Name())

		if t.start.Run(on) {
			log.Infof("playing %s", t.anim.Name())
			t.since = now
			restore = true
		}

		if t.stop.Run(!on) {
			log.Infof("stopped %s", t.anim.Name())
			restore = true
		}
	}

	if restore {
		if err := a.base.Restore(a.p); err != nil {
			return err
		}
	}

	for _, t := range a.tracks {
		if !state.Playing(t.anim.Name()) {
			continue
		}

		if err := t.anim.Apply(a.p, a.base, now-t.since); err != nil {
			return err
		}
	}

	return nil
}
