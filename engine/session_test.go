package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionWorld is an 800x600 ground-row world with the goal flag planted at
// x=700, reachable by walking right from the spawn.
func sessionWorld() *StaticWorld {
	w := NewWorld(800, 600, 40, 2, Rect{X: 700, Y: 400, W: 20, H: 160})
	for x := 0; x < 800; x += 40 {
		w.AddTile(TileBrick, Rect{X: x, Y: 560, W: 40, H: 40})
	}
	return w
}

func TestSessionGoalContactStartsClearing(t *testing.T) {
	w := sessionWorld()
	// Spawn just left of the goal, moving right.
	b := NewBody(660, 528, 32, 32)
	b.VelX = 4
	s := NewSession(w, b, testTuning(), 40)

	require.Equal(t, Running, s.State())

	// Drive right until the box reaches the goal region.
	var ticks int
	for s.State() == Running {
		s.StepOnce(Input{Right: true})
		ticks++
		require.Less(t, ticks, 60, "never reached the goal")
	}

	// Transition happens on the exact contact tick, velocities zeroed.
	assert.Equal(t, ClearingDescent, s.State())
	assert.Equal(t, 0.0, b.VelX)
	assert.Equal(t, 0.0, b.VelY)
	assert.True(t, b.Box.Intersects(w.Goal()))
	assert.False(t, s.Complete())
}

func TestSessionClearSequenceRunsToCompletion(t *testing.T) {
	w := sessionWorld()
	b := NewBody(660, 528, 32, 32)
	s := NewSession(w, b, testTuning(), 40)

	for s.State() == Running {
		s.StepOnce(Input{Right: true, Run: true})
	}

	// Input is ignored from here on; pass an empty snapshot.
	sawWalk := false
	var ticks int
	for !s.Complete() {
		s.StepOnce(Input{})
		ticks++
		require.Less(t, ticks, 1000, "clear sequence never finished")
		if s.State() == ClearingWalk {
			sawWalk = true
			// The descent settled the body onto the ground row.
			assert.GreaterOrEqual(t, b.Box.Bottom(), 560)
		}
	}

	assert.True(t, sawWalk)
	assert.Equal(t, Cleared, s.State())
	assert.Greater(t, b.Box.X, w.Width()-testTuning().CompletionOffset)

	// Terminal: further ticks change nothing.
	x := b.Box.X
	s.StepOnce(Input{Right: true})
	assert.Equal(t, x, b.Box.X)
	assert.Equal(t, Cleared, s.State())
}

func TestSessionAbort(t *testing.T) {
	w := sessionWorld()
	b := NewBody(50, 528, 32, 32)
	s := NewSession(w, b, testTuning(), 40)

	s.StepOnce(Input{Right: true})
	pos := b.PosX

	s.Abort()
	assert.True(t, s.Aborted())

	s.StepOnce(Input{Right: true})
	assert.Equal(t, pos, b.PosX, "aborted session must not advance")
	assert.Equal(t, Running, s.State())
}

// Same input script, same world seed, same tick count: bit-identical state.
func TestSessionFixedStepDeterminism(t *testing.T) {
	run := func() *Body {
		w := sessionWorld()
		b := NewBody(50, 528, 32, 32)
		s := NewSession(w, b, testTuning(), 40)
		for i := 0; i < 300; i++ {
			in := Input{Right: i%3 != 0, Jump: i%40 < 10, Run: i > 150}
			s.StepOnce(in)
		}
		return b
	}

	a, b := run(), run()
	assert.Equal(t, a.PosX, b.PosX)
	assert.Equal(t, a.PosY, b.PosY)
	assert.Equal(t, a.VelX, b.VelX)
	assert.Equal(t, a.VelY, b.VelY)
	assert.Equal(t, a.OnGround, b.OnGround)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "clearing-descent", ClearingDescent.String())
	assert.Equal(t, "clearing-walk", ClearingWalk.String())
	assert.Equal(t, "cleared", Cleared.String())
}
