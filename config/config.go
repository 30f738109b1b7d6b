package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/solver"
)

// EnvPrefix is prepended to every key to find its environment variable, so
// the threshold can be set with IK_THRESHOLD.
const EnvPrefix = "IK"

var ErrInvalid = errors.New("invalid config")

var log = logrus.WithFields(logrus.Fields{
	"pkg": "config",
})

type Orbit struct {
	Center []float64 `mapstructure:"center"`
	Radius float64   `mapstructure:"radius"`
	Speed  float64   `mapstructure:"speed"`
}

type Config struct {

	// Path to a YAML rig. Empty means the built-in mannequin.
	Rig string `mapstructure:"rig"`

	Solver     string    `mapstructure:"solver"`
	Chain      []string  `mapstructure:"chain"`
	Target     []float64 `mapstructure:"target"`
	Threshold  float64   `mapstructure:"threshold"`
	Iterations int       `mapstructure:"iterations"`
	Effector   string    `mapstructure:"effector"`

	Frames int      `mapstructure:"frames"`
	FPS    int      `mapstructure:"fps"`
	Play   []string `mapstructure:"play"`
	Orbit  Orbit    `mapstructure:"orbit"`

	Metrics  bool   `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log-level"`
	Debug    bool   `mapstructure:"debug"`
}

// New returns a viper instance with every default set, and the environment
// bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("rig", "")
	v.SetDefault("solver", "fabrik")
	v.SetDefault("chain", []string{"upperarm_l", "lowerarm_l", "hand_l"})
	v.SetDefault("target", []float64{40, 120, 30})
	v.SetDefault("threshold", solver.DefaultThreshold)
	v.SetDefault("iterations", 0)
	v.SetDefault("effector", "tip")
	v.SetDefault("frames", 120)
	v.SetDefault("fps", 60)
	v.SetDefault("play", []string{})
	v.SetDefault("orbit.center", []float64{45, 130, 20})
	v.SetDefault("orbit.radius", 15)
	v.SetDefault("orbit.speed", 2)
	v.SetDefault("metrics", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("debug", false)

	return v
}

// Load reads the config file (if path isn't empty) into v, then decodes and
// validates the whole thing.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w (while reading config %s)", err, path)
		}

		log.Infof("read config from %s", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w (while decoding config)", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	if _, err := solver.New(c.Solver); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	if _, err := solver.ParseEffector(c.Effector); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	if len(c.Chain) == 0 {
		return fmt.Errorf("%w: chain is empty", ErrInvalid)
	}

	if _, err := c.TargetVector(); err != nil {
		return err
	}

	if _, err := vector("orbit.center", c.Orbit.Center); err != nil {
		return err
	}

	if !(c.Threshold > 0) {
		return fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalid, c.Threshold)
	}

	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalid, c.Iterations)
	}

	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}

	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalid, c.Frames)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}

	return nil
}

// NewSolver returns the configured solver, and the config to solve with.
// Zero iterations means the solver's own default.
func (c Config) NewSolver() (solver.Solver, solver.Config, error) {
	s, err := solver.New(c.Solver)
	if err != nil {
		return nil, solver.Config{}, err
	}

	eff, err := solver.ParseEffector(c.Effector)
	if err != nil {
		return nil, solver.Config{}, err
	}

	cfg := solver.DefaultConfig(s)
	cfg.Threshold = c.Threshold
	cfg.Effector = eff
	if c.Iterations > 0 {
		cfg.Iterations = c.Iterations
	}

	return s, cfg, nil
}

func (c Config) TargetVector() (math3d.Vector3, error) {
	return vector("target", c.Target)
}

func (c Config) OrbitCenter() (math3d.Vector3, error) {
	return vector("orbit.center", c.Orbit.Center)
}

func vector(key string, f []float64) (math3d.Vector3, error) {
	if len(f) != 3 {
		return math3d.ZeroVector3, fmt.Errorf("%w: %s needs 3 values, got %d", ErrInvalid, key, len(f))
	}

	return math3d.MakeVector3(f[0], f[1], f[2]), nil
}
