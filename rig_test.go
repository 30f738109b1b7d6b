package ik

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timonso/ik/skeleton"
)

type recorder struct {
	name  string
	log   *[]string
	boot  error
	tick  error
	ticks []time.Duration
	stop  int
}

func (r *recorder) Boot() error {
	*r.log = append(*r.log, "boot "+r.name)
	return r.boot
}

func (r *recorder) Tick(now time.Duration, state *State) error {
	*r.log = append(*r.log, "tick "+r.name)
	r.ticks = append(r.ticks, now)
	if r.stop > 0 && state.Frame >= r.stop {
		state.Shutdown = true
	}
	return r.tick
}

func TestUpdateTicksInOrder(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", log: &calls}
	b := &recorder{name: "b", log: &calls}

	r := New(skeleton.Mannequin())
	r.Add(a)
	r.Add(b)

	require.NoError(t, r.Boot())
	require.NoError(t, r.Update(10*time.Millisecond))
	require.NoError(t, r.Update(10*time.Millisecond))

	assert.Equal(t, []string{"boot a", "boot b", "tick a", "tick b", "tick a", "tick b"}, calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, a.ticks)
	assert.Equal(t, 2, r.State.Frame)
	assert.Equal(t, 20*time.Millisecond, r.State.Elapsed)
}

func TestBootStopsAtFirstError(t *testing.T) {
	var calls []string
	bad := errors.New("no")

	r := New(skeleton.Mannequin())
	r.Add(&recorder{name: "a", log: &calls, boot: bad})
	r.Add(&recorder{name: "b", log: &calls})

	assert.ErrorIs(t, r.Boot(), bad)
	assert.Equal(t, []string{"boot a"}, calls)
}

func TestUpdateTicksEveryComponentDespiteErrors(t *testing.T) {
	var calls []string
	bad := errors.New("no")

	r := New(skeleton.Mannequin())
	r.Add(&recorder{name: "a", log: &calls, tick: bad})
	r.Add(&recorder{name: "b", log: &calls})

	assert.ErrorIs(t, r.Update(time.Second), bad)
	assert.Equal(t, []string{"tick a", "tick b"}, calls)
}

func TestRunStopsOnShutdown(t *testing.T) {
	var calls []string

	r := New(skeleton.Mannequin())
	r.Add(&recorder{name: "a", log: &calls, stop: 3})

	n, err := r.Run(10, time.Second/60)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, r.State.Shutdown)
}

func TestAnimationFlags(t *testing.T) {
	s := NewState()
	assert.False(t, s.Playing("wave"))

	s.Play("wave")
	assert.True(t, s.Playing("wave"))

	s.Stop("wave")
	assert.False(t, s.Playing("wave"))
}
