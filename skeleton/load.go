package skeleton

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/timonso/ik/math3d"
	"gopkg.in/yaml.v3"
)

//go:embed mannequin.yaml
var mannequinRig []byte

// Definition is the on-disk form of a skeleton. Joints must be listed after
// their parents.
type Definition struct {
	Joints  []JointDefinition  `yaml:"joints"`
	Sockets []SocketDefinition `yaml:"sockets"`
}

type JointDefinition struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`

	// Offset from the parent joint, in the parent's space.
	Offset []float64 `yaml:"offset"`

	// Heading, pitch and bank (in degrees) relative to the parent.
	Rotation []float64 `yaml:"rotation"`
}

type SocketDefinition struct {
	Name   string    `yaml:"name"`
	Joint  string    `yaml:"joint"`
	Offset []float64 `yaml:"offset"`
}

// Mannequin returns a fresh copy of the built-in humanoid rig. It's Y-up,
// facing +Z, with the arms out to the sides and the elbows a little bent.
func Mannequin() *Skeleton {
	s, err := Parse(mannequinRig)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in rig: %s", err))
	}

	return s
}

// Load reads a skeleton definition from a YAML file.
func Load(path string) (*Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w (while reading rig %s)", err, path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (while parsing rig %s)", err, path)
	}

	log.Infof("loaded %d joints from %s", s.Len(), path)
	return s, nil
}

// Parse builds a skeleton from a YAML definition.
func Parse(data []byte) (*Skeleton, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	return d.Build()
}

func (d Definition) Build() (*Skeleton, error) {
	s := New()

	for _, jd := range d.Joints {
		if jd.Name == "" {
			return nil, fmt.Errorf("joint with no name (parent %q)", jd.Parent)
		}

		offset, err := vector(jd.Offset)
		if err != nil {
			return nil, fmt.Errorf("%w (while reading offset of %s)", err, jd.Name)
		}

		rot, err := vector(jd.Rotation)
		if err != nil {
			return nil, fmt.Errorf("%w (while reading rotation of %s)", err, jd.Name)
		}

		local := math3d.Transform{
			Position: offset,
			Rotation: math3d.Euler(rot.X, rot.Y, rot.Z).Quaternion(),
		}

		if _, err := s.AddJoint(jd.Name, jd.Parent, local); err != nil {
			return nil, err
		}

		log.Debugf("joint %s parent=%q offset=%s", jd.Name, jd.Parent, offset)
	}

	for _, sd := range d.Sockets {
		offset, err := vector(sd.Offset)
		if err != nil {
			return nil, fmt.Errorf("%w (while reading offset of socket %s)", err, sd.Name)
		}

		if err := s.AddSocket(sd.Name, sd.Joint, offset); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// vector converts an optional triple into a vector. Missing means zero.
func vector(f []float64) (math3d.Vector3, error) {
	switch len(f) {
	case 0:
		return math3d.ZeroVector3, nil
	case 3:
		return math3d.Vector3{X: f[0], Y: f[1], Z: f[2]}, nil
	default:
		return math3d.ZeroVector3, fmt.Errorf("expected 3 values, got %d", len(f))
	}
}
