package systems

import (
	"time"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/engine"

	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation drains elapsed wall-clock time into fixed physics ticks.
// Rendering rate never affects simulation results: every tick sees the same
// step regardless of how the frame times fall.
func UpdateSimulation(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	// Escape only counts during normal play; once the clear sequence has
	// started the level is won and escape must not forfeit the unlock.
	if s.Session.State() == engine.Running && GetAction(input, cfg.ActionMenuBack).JustPressed {
		s.Session.Abort()
	}

	now := time.Now()
	if s.LastTime.IsZero() {
		s.LastTime = now
	}
	elapsed := now.Sub(s.LastTime).Seconds()
	s.LastTime = now

	// Input is snapshotted once per frame; every tick drained this frame
	// sees the same held state, like a keyboard poll at frame rate would.
	in := engine.Input{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Run:   input.Current[cfg.ActionRun],
		Jump:  input.Current[cfg.ActionJump],
	}

	s.Clock.Advance(elapsed, func() {
		s.Session.StepOnce(in)
	})
}
