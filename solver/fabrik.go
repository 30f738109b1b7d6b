package solver

import (
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

// Link is the working state of one joint during a FABRIK solve. Length is the
// distance to the next link, and is zero for the last one.
type Link struct {
	Joint    skeleton.JointID
	Position math3d.Vector3
	Length   float64
}

// Links reads the current world positions of the chain, and measures the
// segments between them.
func Links(acc skeleton.Accessor, c chain.Chain) []Link {
	links := make([]Link, c.Len())
	for i := range links {
		id := c.Joint(i)
		links[i] = Link{Joint: id, Position: acc.Position(id)}
		if i > 0 {
			links[i-1].Length = links[i-1].Position.Distance(links[i].Position)
		}
	}

	return links
}

// FABRIK is a forward and backward reaching solver. It works on positions
// alone, then writes them back to the skeleton. The last joint of the chain is
// always the end effector.
type FABRIK struct {

	// Trace, if set, is called after every pass with the links. They must not
	// be modified.
	Trace func(pass int, links []Link)
}

func (s *FABRIK) Name() string {
	return "fabrik"
}

func (s *FABRIK) Solve(acc skeleton.Accessor, c chain.Chain, target math3d.Vector3, cfg Config) (Result, error) {
	if err := precheck(s.Name(), c, cfg); err != nil {
		return Result{}, err
	}

	links := Links(acc, c)
	res := reach(links, target, cfg, s.Trace)

	// Nothing moved, so there's nothing to write.
	if res.Iterations == 0 {
		log.Debugf("fabrik: already at %s", target)
		return res, nil
	}

	for _, l := range links {
		acc.SetPosition(l.Joint, l.Position)
	}

	log.Debugf("fabrik: %s toward %s", res, target)
	return res, nil
}

// Reach moves the links toward the target in place, without touching any
// skeleton. The first link stays where it is, and the lengths of the links
// are preserved.
func Reach(links []Link, target math3d.Vector3, cfg Config) Result {
	return reach(links, target, cfg, nil)
}

func reach(links []Link, target math3d.Vector3, cfg Config, trace func(int, []Link)) Result {
	res := Result{}
	if len(links) == 0 {
		return res
	}

	n := len(links)
	root := links[0].Position

	for pass := 0; pass < cfg.Iterations; pass++ {
		if links[n-1].Position.Distance(target) <= cfg.Threshold {
			break
		}

		res.Iterations++

		// Backward: pin the end to the target, and drag the rest after it.
		links[n-1].Position = target
		for i := n - 2; i >= 0; i-- {
			dir := links[i].Position.Subtract(links[i+1].Position).Unit()
			links[i].Position = links[i+1].Position.Add(dir.MultiplyByScalar(links[i].Length))
		}

		// Forward: put the root back, and drag the rest after it.
		links[0].Position = root
		for i := 1; i < n; i++ {
			dir := links[i].Position.Subtract(links[i-1].Position).Unit()
			links[i].Position = links[i-1].Position.Add(dir.MultiplyByScalar(links[i-1].Length))
		}

		if trace != nil {
			trace(pass, links)
		}
	}

	res.Distance = links[n-1].Position.Distance(target)
	res.Converged = res.Distance <= cfg.Threshold
	return res
}
