package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timonso/ik/chain"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

func v(x, y, z float64) math3d.Vector3 {
	return math3d.Vector3{X: x, Y: y, Z: z}
}

// bent returns a three segment chain, ten units each, with a right angle at
// each of the middle joints:
// a(0,0,0) -> b(10,0,0) -> c(10,10,0) -> d(20,10,0)
func bent(t *testing.T) *skeleton.Skeleton {
	s := skeleton.New()
	parent := ""
	for _, j := range []struct {
		name   string
		offset math3d.Vector3
	}{
		{"a", v(0, 0, 0)},
		{"b", v(10, 0, 0)},
		{"c", v(0, 10, 0)},
		{"d", v(10, 0, 0)},
	} {
		_, err := s.AddJoint(j.name, parent, math3d.Transform{Position: j.offset, Rotation: math3d.IdentityOrientation})
		require.NoError(t, err)
		parent = j.name
	}

	return s
}

func mustChain(t *testing.T, acc skeleton.Accessor, names ...string) chain.Chain {
	c, err := chain.New(acc, names...)
	require.NoError(t, err)
	return c
}

func positions(acc skeleton.Accessor, c chain.Chain) []math3d.Vector3 {
	out := make([]math3d.Vector3, c.Len())
	for i := range out {
		out[i] = acc.Position(c.Joint(i))
	}
	return out
}

// lengths returns the distances between consecutive joints.
func lengths(acc skeleton.Accessor, c chain.Chain) []float64 {
	p := positions(acc, c)
	out := make([]float64, 0, len(p))
	for i := 1; i < len(p); i++ {
		out = append(out, p[i-1].Distance(p[i]))
	}
	return out
}

func assertNonIncreasing(t *testing.T, ds []float64) {
	for i := 1; i < len(ds); i++ {
		if ds[i] > ds[i-1]+1e-9 {
			t.Errorf("distance went up at pass %d: %.6f -> %.6f", i, ds[i-1], ds[i])
		}
	}
}
