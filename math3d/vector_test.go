package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	type eg struct {
		input Vector3
		exp   float64
	}

	examples := []eg{
		{Vector3{X: 0, Y: 0, Z: 0}, 0},
		{Vector3{X: 1, Y: 1, Z: 1}, 1.732050808},
		{Vector3{X: 1, Y: 2, Z: 3}, 3.741657387},
		{Vector3{X: 4, Y: 5, Z: 6}, 8.774964387},
	}

	for _, x := range examples {
		assert.InDelta(t, x.exp, x.input.Magnitude(), 0.01)
	}
}

func TestDistance(t *testing.T) {
	type eg struct {
		recv Vector3
		arg  Vector3
		out  float64
	}

	examples := []eg{
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 1, Y: 1, Z: 1}, 0},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 2, Y: 2, Z: 2}, 1.732050808},
		{Vector3{X: 0, Y: 0, Z: 0}, Vector3{X: 30, Y: 0, Z: 0}, 30},
	}

	for _, x := range examples {
		assert.InDelta(t, x.out, x.recv.Distance(x.arg), 0.01)
	}
}

func TestUnit(t *testing.T) {
	type eg struct {
		in  Vector3
		out Vector3
	}

	e := 1 / math.Sqrt(3)
	examples := []eg{
		{Vector3{X: 0, Y: 0, Z: 0}, ZeroVector3},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: e, Y: e, Z: e}},
		{Vector3{X: 2, Y: 2, Z: 2}, Vector3{X: e, Y: e, Z: e}},
		{Vector3{X: 0, Y: -5, Z: 0}, Vector3{X: 0, Y: -1, Z: 0}},
	}

	for i, x := range examples {
		act := x.in.Unit()
		assert.False(t, act.NaN(), "example %d produced NaN", i+1)
		assert.True(t, act.ApproxEqual(x.out, 1e-12), "expected example %d to be %s, but was %s", i+1, x.out, act)
	}
}

func TestSubtract(t *testing.T) {
	v1 := Vector3{X: 1, Y: 2, Z: 3}
	v2 := Vector3{X: 4, Y: 5, Z: 6}

	vAct := v2.Subtract(v1)
	vExp := Vector3{X: 3, Y: 3, Z: 3}
	assert.Equal(t, vExp, vAct)
}

func TestMultiplyByScalar(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}

	vAct := v.MultiplyByScalar(0.5)
	vExp := Vector3{X: 0.5, Y: 1, Z: 1.5}
	assert.Equal(t, vExp, vAct)

	vAct = v.MultiplyByScalar(2)
	vExp = Vector3{X: 2, Y: 4, Z: 6}
	assert.Equal(t, vExp, vAct)
}

func TestCrossAndDot(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}

	assert.Equal(t, Vector3{Z: 1}, x.Cross(y))
	assert.Equal(t, Vector3{Z: -1}, y.Cross(x))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 14.0, Vector3{1, 2, 3}.Dot(Vector3{1, 2, 3}))
}
