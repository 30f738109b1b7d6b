package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegRad(t *testing.T) {
	assert.InDelta(t, math.Pi, Rad(180), 1e-12)
	assert.InDelta(t, 90.0, Deg(math.Pi/2), 1e-12)
	assert.InDelta(t, 42.0, Deg(Rad(42)), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(25, -10, 10))
	assert.Equal(t, -10.0, Clamp(-25, -10, 10))
	assert.Equal(t, 3.0, Clamp(3, -10, 10))
}
