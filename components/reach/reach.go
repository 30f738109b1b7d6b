package reach

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik"
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/skeleton"
	"github.com/timonso/ik/solver"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "reach",
})

// Recorder is told about every solve attempt, including the skipped ones.
type Recorder interface {
	Observe(solver string, res solver.Result, err error)
}

// Reach drives one chain toward the target in the shared state, once a frame.
type Reach struct {
	acc    skeleton.Accessor
	solver solver.Solver
	cfg    solver.Config
	names  []string
	rec    Recorder

	chain    chain.Chain
	resolved bool

	// The outcome of the most recent solve.
	Last solver.Result
}

func New(acc skeleton.Accessor, s solver.Solver, cfg solver.Config, names ...string) *Reach {
	return &Reach{
		acc:    acc,
		solver: s,
		cfg:    cfg,
		names:  names,
	}
}

// WithRecorder sets the recorder, and returns the component for chaining.
func (r *Reach) WithRecorder(rec Recorder) *Reach {
	r.rec = rec
	return r
}

// Boot checks the config, which won't get any better by trying again. Missing
// joints aren't fatal, since they might be added later.
func (r *Reach) Boot() error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	if err := r.resolve(); err != nil {
		log.Warnf("%s: %s (will retry)", r.solver.Name(), err)
	}

	return nil
}

func (r *Reach) Tick(now time.Duration, state *ik.State) error {
	if err := r.resolve(); err != nil {
		log.Warnf("skipping frame %d: %s", state.Frame, err)
		r.observe(solver.Result{}, err)
		return nil
	}

	res, err := r.solver.Solve(r.acc, r.chain, state.Target, r.cfg)
	r.observe(res, err)
	if err != nil {
		return err
	}

	r.Last = res
	log.Debugf("frame %d: %s %s -> %s: %s", state.Frame, r.solver.Name(), r.chain, state.Target, res)
	return nil
}

// Chain returns the resolved chain, which is empty until the joints exist.
func (r *Reach) Chain() chain.Chain {
	return r.chain
}

func (r *Reach) resolve() error {
	if r.resolved {
		return nil
	}

	c, err := chain.New(r.acc, r.names...)
	if err != nil {
		return err
	}

	if err := c.CheckHierarchy(r.acc); err != nil {
		log.Warnf("%s: %s", c, err)
	}

	r.chain = c
	r.resolved = true
	log.Infof("resolved %s", c)
	return nil
}

func (r *Reach) observe(res solver.Result, err error) {
	if r.rec != nil {
		r.rec.Observe(r.solver.Name(), res, err)
	}
}
