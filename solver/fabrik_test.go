package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fake_accessor "github.com/timonso/ik/fake/accessor"
	"github.com/timonso/ik/math3d"
	"github.com/timonso/ik/skeleton"
)

func TestFABRIKReachable(t *testing.T) {
	type eg struct {
		target math3d.Vector3
		iters  int
	}

	data := []eg{
		{v(25, 0, 0), 2},
		{v(15, 15, 0), 2},
		{v(-5, 3, 8), 2},
		{v(0, 0, 0), 3},
		{v(20, 10, 0), 0},
	}

	cfg := Config{Threshold: 0.01, Iterations: 10}

	for i, eg := range data {
		acc := bent(t)
		c := mustChain(t, acc, "a", "b", "c", "d")

		var trace []float64
		s := &FABRIK{Trace: func(pass int, links []Link) {
			trace = append(trace, links[len(links)-1].Position.Distance(eg.target))

			for j := 1; j < len(links); j++ {
				assert.InDelta(t, 10, links[j-1].Position.Distance(links[j].Position), 1e-4, "Example #%d pass %d", i+1, pass)
			}
		}}

		res, err := s.Solve(acc, c, eg.target, cfg)
		require.NoError(t, err, "Example #%d", i+1)

		assert.True(t, res.Converged, "Example #%d: %s", i+1, res)
		assert.Equal(t, eg.iters, res.Iterations, "Example #%d", i+1)
		assert.LessOrEqual(t, acc.Position(c.Tip()).Distance(eg.target), 0.01, "Example #%d", i+1)
		assertNonIncreasing(t, trace)

		assert.True(t, acc.Position(c.Joint(0)).ApproxEqual(v(0, 0, 0), 1e-9), "Example #%d: root moved", i+1)
		for _, l := range lengths(acc, c) {
			assert.InDelta(t, 10, l, 1e-4, "Example #%d", i+1)
		}
	}
}

func TestFABRIKUnreachable(t *testing.T) {
	acc := bent(t)
	c := mustChain(t, acc, "a", "b", "c", "d")

	res, err := (&FABRIK{}).Solve(acc, c, v(100, 0, 0), Config{Threshold: 0.01, Iterations: 10})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 10, res.Iterations)
	assert.InDelta(t, 70, res.Distance, 1e-4)

	exp := []math3d.Vector3{v(0, 0, 0), v(10, 0, 0), v(20, 0, 0), v(30, 0, 0)}
	for i, p := range positions(acc, c) {
		assert.True(t, p.ApproxEqual(exp[i], 1e-4), "joint %d at %s, expected %s", i, p, exp[i])
	}
}

func TestFABRIKWritesPositionsOnly(t *testing.T) {
	acc := fake_accessor.New(bent(t))
	c := mustChain(t, acc, "a", "b", "c", "d")

	_, err := (&FABRIK{}).Solve(acc, c, v(25, 0, 0), DefaultConfig(&FABRIK{}))
	require.NoError(t, err)

	assert.Empty(t, acc.OrientationWrites)
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, 1, acc.PositionWrites[c.Joint(i)])
	}
}

func TestFABRIKAlreadyThere(t *testing.T) {
	acc := fake_accessor.New(bent(t))
	c := mustChain(t, acc, "a", "b", "c", "d")

	res, err := (&FABRIK{}).Solve(acc, c, v(20, 10, 0), DefaultConfig(&FABRIK{}))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 0, acc.Writes())
}

func TestFABRIKMannequin(t *testing.T) {
	acc := skeleton.Mannequin()
	c := mustChain(t, acc, "upperarm_l", "lowerarm_l", "hand_l")
	require.NoError(t, c.CheckHierarchy(acc))

	before := lengths(acc, c)
	target := v(40, 120, 30)

	res, err := (&FABRIK{}).Solve(acc, c, target, DefaultConfig(&FABRIK{}))
	require.NoError(t, err)

	assert.True(t, res.Converged, "%s", res)
	assert.InDeltaSlice(t, before, lengths(acc, c), 1e-4)

	// Everything outside the chain hangs off the hand, or isn't moved at all.
	grip, ok := acc.SocketPosition("hand_l_grip")
	require.True(t, ok)
	hand, _ := acc.Lookup("hand_l")
	assert.InDelta(t, 8, grip.Distance(acc.Position(hand)), 1e-9)
	assert.True(t, position(acc, "spine_02").ApproxEqual(v(0, 120, 0), 1e-9))
}

func TestReach(t *testing.T) {
	links := []Link{
		{Position: v(0, 0, 0), Length: 0},
		{Position: v(0, 0, 0), Length: 5},
		{Position: v(5, 0, 0)},
	}

	// Coincident links have no direction between them, which mustn't produce
	// NaNs.
	res := Reach(links, v(0, 5, 0), Config{Threshold: 0.01, Iterations: 10})
	assert.True(t, res.Converged, "%s", res)
	for _, l := range links {
		assert.False(t, l.Position.NaN())
	}

	assert.Equal(t, Result{}, Reach(nil, v(1, 2, 3), Config{Threshold: 0.01, Iterations: 10}))
}

func position(acc skeleton.Accessor, name string) math3d.Vector3 {
	id, _ := acc.Lookup(name)
	return acc.Position(id)
}
