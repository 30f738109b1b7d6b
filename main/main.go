package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/timonso/ik/config"
	"github.com/timonso/ik/skeleton"
	"github.com/timonso/ik/solver"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ikdemo",
		Short:         "Drive a chain of joints toward a target with CCD or FABRIK",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().String("log-level", "info", "one of: debug, info, warn, error")

	cmd.AddCommand(
		newSolveCommand(),
		newRunCommand(),
	)
	return cmd
}

// addSolverFlags adds the flags shared by every command which solves.
func addSolverFlags(fs *pflag.FlagSet) {
	fs.String("rig", "", "path to a YAML rig (default: the built-in mannequin)")
	fs.String("solver", "fabrik", fmt.Sprintf("one of: %v", solver.Names()))
	fs.StringSlice("chain", []string{"upperarm_l", "lowerarm_l", "hand_l"}, "joint names, root first")
	fs.String("target", "40,120,30", "target position: x,y,z")
	fs.Float64("threshold", solver.DefaultThreshold, "distance at which the target counts as reached")
	fs.Int("iterations", 0, "passes per solve (default: the solver's own)")
	fs.String("effector", "tip", "which end of the chain to drive: tip or first")
	fs.Bool("metrics", false, "print metrics after solving")
	fs.Bool("debug", false, "dump the chain and results")
}

// load merges defaults, the config file, the environment, and the flags, in
// increasing order of precedence.
func load(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	c, err := config.Load(v, path)
	if err != nil {
		return config.Config{}, err
	}

	setLogLevel(c.LogLevel)
	return c, nil
}

func setLogLevel(s string) {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		logrus.Warnf("bad log level %q, using info", s)
		lvl = logrus.InfoLevel
	}

	logrus.SetLevel(lvl)
}

func loadRig(c config.Config) (*skeleton.Skeleton, error) {
	if c.Rig == "" {
		return skeleton.Mannequin(), nil
	}

	return skeleton.Load(c.Rig)
}
