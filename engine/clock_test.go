package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepPanicsOnBadRate(t *testing.T) {
	assert.Panics(t, func() { NewFixedStep(0) })
	assert.Panics(t, func() { NewFixedStep(-60) })
}

func TestFixedStepDrainsWholeTicks(t *testing.T) {
	fs := NewFixedStep(60)
	ticks := 0
	tick := func() { ticks++ }

	// One 20ms frame at 60Hz: exactly one tick, remainder carried.
	assert.Equal(t, 1, fs.Advance(0.020, tick))
	assert.Equal(t, 1, ticks)

	// Tiny frame: no tick, time still accumulates.
	assert.Equal(t, 0, fs.Advance(0.001, tick))

	// A 33.3ms frame plus the carried remainder drains two ticks.
	assert.Equal(t, 2, fs.Advance(1.0/30.0, tick))
	assert.Equal(t, 3, ticks)
}

func TestFixedStepZeroElapsed(t *testing.T) {
	fs := NewFixedStep(60)
	assert.Equal(t, 0, fs.Advance(0, func() {}))
}

// A long stall must not replay as an unbounded catch-up burst.
func TestFixedStepCapsAccumulator(t *testing.T) {
	fs := NewFixedStep(60)
	ticks := 0

	got := fs.Advance(10.0, func() { ticks++ })
	assert.Equal(t, maxPendingTicks, got)
	assert.Equal(t, maxPendingTicks, ticks)

	// And the accumulator is fully drained afterwards.
	assert.Equal(t, 0, fs.Advance(0, func() { ticks++ }))
}

// One second of wall clock, however it is sliced into frames, always yields
// the same tick total.
func TestFixedStepSliceInvariance(t *testing.T) {
	count := func(frames []float64) int {
		fs := NewFixedStep(60)
		total := 0
		for _, dt := range frames {
			total += fs.Advance(dt, func() {})
		}
		return total
	}

	small := make([]float64, 100)
	for i := range small {
		small[i] = 0.01
	}
	large := make([]float64, 10)
	for i := range large {
		large[i] = 0.1
	}

	// Allow one tick of slack for the fractional remainder left in the
	// accumulator at the end of the run.
	assert.InDelta(t, 60, count(small), 1)
	assert.InDelta(t, 60, count(large), 1)
}
