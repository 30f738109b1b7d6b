package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

const (
	// DefaultThreshold is the distance (in skeleton units) at which the end
	// effector is considered to have reached the target.
	DefaultThreshold = 0.01

	DefaultCCDIterations    = 10
	DefaultFABRIKIterations = 5
)

var (
	ErrEmptyChain    = errors.New("empty chain")
	ErrInvalidConfig = errors.New("invalid solver config")
	ErrUnknownSolver = errors.New("unknown solver")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "solver",
})

// Effector selects which joint of the chain is driven toward the target.
type Effector int

const (
	// EffectorTip drives the last joint of the chain.
	EffectorTip Effector = iota

	// EffectorFirst drives the first joint of the chain. This is only useful
	// for chains which are listed tip first (hand, lowerarm, upperarm).
	EffectorFirst
)

func (e Effector) String() string {
	switch e {
	case EffectorTip:
		return "tip"
	case EffectorFirst:
		return "first"
	default:
		return fmt.Sprintf("Effector(%d)", int(e))
	}
}

func ParseEffector(s string) (Effector, error) {
	switch strings.ToLower(s) {
	case "", "tip":
		return EffectorTip, nil
	case "first":
		return EffectorFirst, nil
	default:
		return EffectorTip, fmt.Errorf("%w: unknown effector %q", ErrInvalidConfig, s)
	}
}

// Config is passed with every solve.
type Config struct {
	Threshold  float64
	Iterations int
	Effector   Effector
}

// Validate returns ErrInvalidConfig if the config can't be solved with.
func (c Config) Validate() error {
	if !(c.Threshold > 0) {
		return fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalidConfig, c.Threshold)
	}

	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}

	if c.Effector != EffectorTip && c.Effector != EffectorFirst {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Effector)
	}

	return nil
}

// Result describes how a solve went. Failing to converge is not an error.
type Result struct {
	Iterations int
	Distance   float64
	Converged  bool
}

func (r Result) String() string {
	return fmt.Sprintf("&Result{iterations=%d distance=%.4f converged=%t}", r.Iterations, r.Distance, r.Converged)
}

// Solver moves a chain of joints so that its end effector approaches the
// target. Implementations read and write the skeleton only through the
// accessor, and leave it untouched if they return an error.
type Solver interface {
	Name() string
	Solve(acc skeleton.Accessor, c chain.Chain, target math3d.Vector3, cfg Config) (Result, error)
}

var constructors = map[string]func() Solver{
	"ccd":    func() Solver { return &CCD{} },
	"fabrik": func() Solver { return &FABRIK{} },
}

// New returns the solver with the given name.
func New(name string) (Solver, error) {
	f, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (expected one of %s)", ErrUnknownSolver, name, strings.Join(Names(), ", "))
	}

	return f(), nil
}

// Names returns the names accepted by New.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

// DefaultConfig returns the config used when the caller doesn't care.
func DefaultConfig(s Solver) Config {
	cfg := Config{Threshold: DefaultThreshold, Iterations: DefaultFABRIKIterations}
	if s.Name() == "ccd" {
		cfg.Iterations = DefaultCCDIterations
	}

	return cfg
}

// precheck rejects a solve before anything is touched.
func precheck(name string, c chain.Chain, cfg Config) error {
	var err error

	if c.Empty() {
		err = ErrEmptyChain
	} else {
		err = cfg.Validate()
	}

	if err != nil {
		log.WithField("solver", name).Warnf("not solving: %s", err)
	}

	return err
}
