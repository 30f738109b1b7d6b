package pose

import (
	"math"
	"sort"
	"time"

	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/utils"
)

// Wave swings one joint from side to side around the vertical axis of its
// parent.
type Wave struct {
	Joint string

	// Speed is in radians per second, and Amplitude in degrees.
	Speed     float64
	Amplitude float64
}

func NewWave() *Wave {
	return &Wave{
		Joint:     "lowerarm_r",
		Speed:     5,
		Amplitude: 30,
	}
}

func (w *Wave) Name() string {
	return "wave"
}

// Offset returns the heading offset, in degrees, at the given time.
func (w *Wave) Offset(t time.Duration) float64 {
	return math.Sin(w.Speed*t.Seconds()) * w.Amplitude
}

func (w *Wave) Apply(p Poser, base *Baseline, t time.Duration) error {
	if err := base.check(p); err != nil {
		return err
	}

	id, ok := lookup(p, w.Name(), w.Joint)
	if !ok {
		return nil
	}

	offset := math3d.MakeSingularEulerAngle(math3d.RotationHeading, w.Offset(t)).Quaternion()
	p.SetLocalRotation(id, offset.Multiply(base.Rotation(id)).Normalize())
	return nil
}

// HandToHeart moves a group of joints back and forth between the baseline and
// a target rotation each.
type HandToHeart struct {
	Speed   float64
	Targets map[string]math3d.Quaternion
}

func NewHandToHeart() *HandToHeart {
	return &HandToHeart{
		Speed: 1,
		Targets: map[string]math3d.Quaternion{
			"lowerarm_r": math3d.Euler(128.978820, -40, -110).Quaternion(),
			"upperarm_r": math3d.Euler(77.239075, -11.350484, -45.080829).Quaternion(),
		},
	}
}

func (h *HandToHeart) Name() string {
	return "hand_to_heart"
}

// Progress returns how far from the baseline (zero) to the targets (one) the
// joints are at the given time.
func (h *HandToHeart) Progress(t time.Duration) float64 {
	return utils.Clamp(0.5*math.Sin(h.Speed*t.Seconds())+0.5, 0, 1)
}

func (h *HandToHeart) Apply(p Poser, base *Baseline, t time.Duration) error {
	if err := base.check(p); err != nil {
		return err
	}

	progress := h.Progress(t)

	// Sorted, so the log reads the same every frame.
	names := make([]string, 0, len(h.Targets))
	for name := range h.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		id, ok := lookup(p, h.Name(), name)
		if !ok {
			continue
		}

		p.SetLocalRotation(id, math3d.Slerp(base.Rotation(id), h.Targets[name], progress))
	}

	return nil
}

// StartingPose holds one joint at a fixed rotation. The default raises the
// right arm, ready to wave.
type StartingPose struct {
	Joint    string
	Rotation math3d.Quaternion
}

func NewStartingPose() *StartingPose {
	return &StartingPose{
		Joint:    "upperarm_r",
		Rotation: math3d.Euler(21.709806, 21.435965, -92.235083).Quaternion(),
	}
}

func (s *StartingPose) Name() string {
	return "starting_pose"
}

func (s *StartingPose) Apply(p Poser, base *Baseline, t time.Duration) error {
	if err := base.check(p); err != nil {
		return err
	}

	id, ok := lookup(p, s.Name(), s.Joint)
	if !ok {
		return nil
	}

	p.SetLocalRotation(id, s.Rotation)
	return nil
}
