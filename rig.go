package ik

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "ik",
})

// State is shared between the components of a rig, and is the only way they
// talk to each other.
type State struct {

	// The point, in world space, which the reaching chains are trying to reach.
	Target math3d.Vector3

	// Time since the rig started updating, and the number of updates so far.
	Elapsed time.Duration
	Frame   int

	// Whether each animation (by name) should be playing.
	Animations map[string]bool

	// Components can set this to true to indicate that the rig should stop.
	Shutdown bool
}

func NewState() *State {
	return &State{
		Target:     math3d.ZeroVector3,
		Animations: map[string]bool{},
	}
}

func (s *State) Play(name string) {
	s.Animations[name] = true
}

func (s *State) Stop(name string) {
	s.Animations[name] = false
}

func (s *State) Playing(name string) bool {
	return s.Animations[name]
}

type Component interface {
	Boot() error
	Tick(now time.Duration, state *State) error
}

// Rig is a skeleton and the components which drive it, frame by frame.
type Rig struct {
	Skeleton   *skeleton.Skeleton
	Components []Component
	State      *State
}

func New(s *skeleton.Skeleton) *Rig {
	return &Rig{
		Skeleton:   s,
		Components: []Component{},
		State:      NewState(),
	}
}

// Add registers a component to receive ticks every frame. Components tick in
// the order they were added.
func (r *Rig) Add(c Component) {
	r.Components = append(r.Components, c)
}

// Boot calls Boot on each component, and stops at the first error.
func (r *Rig) Boot() error {
	for _, c := range r.Components {
		err := c.Boot()
		if err != nil {
			return fmt.Errorf("%w (while booting %T)", err, c)
		}
	}

	log.Infof("booted %d components", len(r.Components))
	return nil
}

// Update advances the clock by dt, then ticks each component. Every component
// is ticked even if an earlier one fails; the errors are returned together.
func (r *Rig) Update(dt time.Duration) error {
	r.State.Elapsed += dt
	r.State.Frame++

	var errs []error
	for _, c := range r.Components {
		err := c.Tick(r.State.Elapsed, r.State)
		if err != nil {
			log.Warnf("frame %d: %T: %s", r.State.Frame, c, err)
			errs = append(errs, fmt.Errorf("%w (while ticking %T)", err, c))
		}
	}

	return errors.Join(errs...)
}

// Run updates the rig the given number of times, or until a component asks it
// to shut down. It returns the number of frames which ran.
func (r *Rig) Run(frames int, dt time.Duration) (int, error) {
	for i := 0; i < frames; i++ {
		if r.State.Shutdown {
			log.Infof("shutdown requested after %d frames", i)
			return i, nil
		}

		if err := r.Update(dt); err != nil {
			return i + 1, err
		}
	}

	return frames, nil
}
