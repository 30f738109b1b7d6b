package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/timonso/ik"
	"github.com/timonso/ik/components/animate"
	"github.com/timonso/ik/components/reach"
	"github.com/timonso/ik/components/target"
	"github.com/timonso/ik/config"
	"github.com/timonso/ik/metrics"
	"github.com/timonso/ik/pose"
	"gonum.org/v1/gonum/stat"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the rig for a number of frames, reaching for an orbiting target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRig(cmd, cmd.OutOrStdout())
		},
	}

	addSolverFlags(cmd.Flags())
	cmd.Flags().Int("frames", 120, "number of frames to run")
	cmd.Flags().Int("fps", 60, "frames per second")
	cmd.Flags().StringSlice("play", nil, fmt.Sprintf("animations to play: %v", animationNames()))
	cmd.Flags().Bool("realtime", false, "wait between frames, rather than running flat out")
	return cmd
}

func animationNames() []string {
	var names []string
	for _, a := range pose.Defaults() {
		names = append(names, a.Name())
	}
	return names
}

// summary accumulates the outcome of each frame's solve.
type summary struct {
	distances  []float64
	iterations []float64
	converged  int
}

func (s *summary) add(r *reach.Reach) {
	s.distances = append(s.distances, r.Last.Distance)
	s.iterations = append(s.iterations, float64(r.Last.Iterations))
	if r.Last.Converged {
		s.converged++
	}
}

func (s *summary) print(out io.Writer) {
	if len(s.distances) == 0 {
		fmt.Fprintln(out, "no frames")
		return
	}

	mean, std := stat.MeanStdDev(s.distances, nil)
	fmt.Fprintf(out, "frames=%d converged=%d\n", len(s.distances), s.converged)
	fmt.Fprintf(out, "distance: mean=%.4f stddev=%.4f\n", mean, std)
	fmt.Fprintf(out, "iterations: mean=%.2f\n", stat.Mean(s.iterations, nil))
}

func buildRig(c config.Config, rec reach.Recorder) (*ik.Rig, *reach.Reach, error) {
	sk, err := loadRig(c)
	if err != nil {
		return nil, nil, err
	}

	s, cfg, err := c.NewSolver()
	if err != nil {
		return nil, nil, err
	}

	center, err := c.OrbitCenter()
	if err != nil {
		return nil, nil, err
	}

	anims := pose.Defaults()
	r := ik.New(sk)
	for _, name := range c.Play {
		if _, ok := pose.ByName(anims, name); !ok {
			return nil, nil, fmt.Errorf("unknown animation: %s (expected one of %v)", name, animationNames())
		}
		r.State.Play(name)
	}

	// Target first, so that the reach sees this frame's target. Animations
	// last, so that they win any joints shared with the chain.
	re := reach.New(sk, s, cfg, c.Chain...).WithRecorder(rec)
	r.Add(target.New(center, c.Orbit.Radius, c.Orbit.Speed))
	r.Add(re)
	r.Add(animate.New(sk, anims...))

	return r, re, nil
}

func runRig(cmd *cobra.Command, out io.Writer) error {
	c, err := load(cmd)
	if err != nil {
		return err
	}

	realtime, err := cmd.Flags().GetBool("realtime")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	r, re, err := buildRig(c, rec)
	if err != nil {
		return err
	}

	if err := r.Boot(); err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM, to stop at the end of a frame.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	dt := time.Second / time.Duration(c.FPS)
	var tick <-chan time.Time
	if realtime {
		t := time.NewTicker(dt)
		defer t.Stop()
		tick = t.C
	}

	sum := &summary{}
	for i := 0; i < c.Frames && !r.State.Shutdown; i++ {
		if tick != nil {
			<-tick
		}

		select {
		case <-sig:
			fmt.Fprintln(out, "caught signal, stopping")
			r.State.Shutdown = true
			continue
		default:
		}

		if err := r.Update(dt); err != nil {
			return err
		}

		sum.add(re)
	}

	sum.print(out)

	if c.Debug {
		spew.Fdump(out, r.State)
	}

	if c.Metrics {
		return metrics.Dump(out, reg)
	}

	return nil
}
