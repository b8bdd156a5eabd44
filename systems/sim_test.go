package systems

import (
	"testing"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testSession(t *testing.T) *engine.Session {
	t.Helper()

	w := engine.NewWorld(800, 600, 40, 2, engine.Rect{X: 100, Y: 400, W: 20, H: 160})
	for x := 0; x < 800; x += 40 {
		w.AddTile(engine.TileBrick, engine.Rect{X: x, Y: 560, W: 40, H: 40})
	}

	body := engine.NewBody(100, 480, 32, 32)
	tuning := engine.Tuning{
		Gravity:           cfg.Physics.Gravity,
		JumpVelocity:      cfg.Physics.JumpVelocity,
		MaxFallSpeed:      cfg.Physics.MaxFallSpeed,
		WalkAccel:         cfg.Physics.WalkAccel,
		RunAccel:          cfg.Physics.RunAccel,
		Friction:          cfg.Physics.Friction,
		MaxWalkSpeed:      cfg.Physics.MaxWalkSpeed,
		MaxRunSpeed:       cfg.Physics.MaxRunSpeed,
		ClearDescentSpeed: cfg.Clear.DescentSpeed,
		ClearWalkSpeed:    cfg.Clear.WalkSpeed,
		CompletionOffset:  cfg.Clear.CompletionOffset,
	}
	return engine.NewSession(w, body, tuning, 40)
}

// simWorld wires the session and input singletons the way the factory does,
// returning the ECS plus direct handles for mutation.
func simWorld(t *testing.T, session *engine.Session) (*ecs.ECS, *components.SessionData, *components.InputData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	sessionEntry := e.World.Entry(e.World.Create(components.Session, components.Cleared))
	components.Session.Set(sessionEntry, &components.SessionData{
		Session:    session,
		Clock:      engine.NewFixedStep(cfg.Sim.TickRate),
		LevelIndex: 1,
	})
	components.Cleared.Set(sessionEntry, &components.ClearedData{})

	inputEntry := e.World.Entry(e.World.Create(components.Input))
	return e, components.Session.Get(sessionEntry), components.Input.Get(inputEntry)
}

func TestEscapeAbortsDuringPlay(t *testing.T) {
	session := testSession(t)
	e, _, input := simWorld(t, session)

	input.Current[cfg.ActionMenuBack] = true
	UpdateSimulation(e)

	assert.True(t, session.Aborted())
}

func TestEscapeIgnoredOnceClearing(t *testing.T) {
	session := testSession(t)

	// The body spawns inside the goal region; the first tick's goal check
	// starts the clear sequence.
	session.StepOnce(engine.Input{})
	require.Equal(t, engine.ClearingDescent, session.State())

	e, _, input := simWorld(t, session)
	input.Current[cfg.ActionMenuBack] = true
	UpdateSimulation(e)

	assert.False(t, session.Aborted())
	assert.NotEqual(t, engine.Running, session.State())
}
