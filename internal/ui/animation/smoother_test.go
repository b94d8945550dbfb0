package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmootherWithoutDurationJumps(t *testing.T) {
	var shown []float64
	smoother := New(Config{}, func(value float64) {
		shown = append(shown, value)
	})

	smoother.SetTarget(0.25)
	smoother.SetTarget(1.7)
	smoother.SetTarget(-1)

	assert.Equal(t, []float64{0.25, 1, 0}, shown)
	assert.Equal(t, 0.0, smoother.Current())
}

func TestSmootherBackwardsJumps(t *testing.T) {
	var shown []float64
	smoother := New(DefaultConfig(), func(value float64) {
		shown = append(shown, value)
	})

	smoother.Jump(0.8)
	smoother.SetTarget(0.1)

	assert.Equal(t, []float64{0.8, 0.1}, shown)
	assert.Equal(t, 0.1, smoother.Current())
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.5, Lerp(0, 1, 0.5))
	assert.Equal(t, 0.2, Lerp(0.2, 0.6, 0))
	assert.InDelta(t, 0.6, Lerp(0.2, 0.6, 1), 1e-9)
}
