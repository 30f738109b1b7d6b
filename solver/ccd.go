package solver

import (
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

// CCD is a cyclic coordinate descent solver. Each pass visits the joints in
// chain order and turns each one so that the end effector points at the
// target, as seen from that joint. It only ever writes orientations.
type CCD struct {

	// Trace, if set, is called after every pass with the distance between the
	// end effector and the target.
	Trace func(pass int, distance float64)
}

func (s *CCD) Name() string {
	return "ccd"
}

func (s *CCD) Solve(acc skeleton.Accessor, c chain.Chain, target math3d.Vector3, cfg Config) (Result, error) {
	if err := precheck(s.Name(), c, cfg); err != nil {
		return Result{}, err
	}

	eff := c.Tip()
	if cfg.Effector == EffectorFirst {
		eff = c.Joint(0)
	}

	res := Result{}

	for pass := 0; pass < cfg.Iterations; pass++ {
		for j := 0; j < c.Len(); j++ {
			end := acc.Position(eff)
			res.Distance = end.Distance(target)
			if res.Distance < cfg.Threshold {
				res.Converged = true
				log.Debugf("ccd: converged on %s after %d passes (distance=%.4f)", target, res.Iterations, res.Distance)
				return res, nil
			}

			if j == 0 {
				res.Iterations++
			}

			// Turning the effector around itself can't move it.
			id := c.Joint(j)
			if id == eff {
				continue
			}

			pos := acc.Position(id)
			rot := math3d.Between(end.Subtract(pos), target.Subtract(pos))
			acc.SetOrientation(id, rot.Multiply(acc.Orientation(id)).Normalize())
		}

		if s.Trace != nil {
			s.Trace(pass, acc.Position(eff).Distance(target))
		}
	}

	res.Distance = acc.Position(eff).Distance(target)
	res.Converged = res.Distance < cfg.Threshold
	log.Debugf("ccd: gave up on %s after %d passes (distance=%.4f)", target, res.Iterations, res.Distance)

	return res, nil
}
