package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/metrics"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one chain toward one target, and print where the joints ended up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, cmd.OutOrStdout())
		},
	}

	addSolverFlags(cmd.Flags())
	return cmd
}

func runSolve(cmd *cobra.Command, out io.Writer) error {
	c, err := load(cmd)
	if err != nil {
		return err
	}

	sk, err := loadRig(c)
	if err != nil {
		return err
	}

	s, cfg, err := c.NewSolver()
	if err != nil {
		return err
	}

	target, err := c.TargetVector()
	if err != nil {
		return err
	}

	ch, err := chain.New(sk, c.Chain...)
	if err != nil {
		return fmt.Errorf("%w (while building chain)", err)
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	res, err := s.Solve(sk, ch, target, cfg)
	rec.Observe(s.Name(), res, err)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s -> %s\n", s.Name(), ch, target)
	for i := 0; i < ch.Len(); i++ {
		fmt.Fprintf(out, "  %-12s %s\n", ch.Name(i), sk.Position(ch.Joint(i)))
	}
	fmt.Fprintf(out, "%s\n", res)

	if c.Debug {
		spew.Fdump(out, cfg, ch.Names(), res)
	}

	if c.Metrics {
		return metrics.Dump(out, reg)
	}

	return nil
}
