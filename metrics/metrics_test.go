package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timonso/ik/solver"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.Observe("fabrik", solver.Result{Iterations: 2, Distance: 0.001, Converged: true}, nil)
	r.Observe("fabrik", solver.Result{Iterations: 5, Distance: 3.5}, nil)
	r.Observe("ccd", solver.Result{}, solver.ErrEmptyChain)

	// The failed solve never reaches the converged counter.
	assert.Equal(t, 1, testutil.CollectAndCount(r.converged))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.solves.WithLabelValues("fabrik")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.converged.WithLabelValues("fabrik")))
	assert.Equal(t, 3.5, testutil.ToFloat64(r.distance.WithLabelValues("fabrik")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("ccd")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues("ccd")))

	exp := `
# HELP ik_solves_converged_total Number of solves which ended within the threshold.
# TYPE ik_solves_converged_total counter
ik_solves_converged_total{solver="fabrik"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(exp), "ik_solves_converged_total"))
}

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	var are prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &are), "got %v", err)
}

func TestDump(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)
	r.Observe("ccd", solver.Result{Iterations: 3, Distance: 0.005, Converged: true}, nil)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, `ik_solves_total{solver="ccd"} 1`)
	assert.Contains(t, out, `ik_solve_iterations_count{solver="ccd"} 1`)
	assert.Contains(t, out, `ik_solve_distance{solver="ccd"} 0.005`)
}
