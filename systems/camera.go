package systems

import (
	"math"

	"github.com/samsoft/brickrun/components"
	"github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/engine"

	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player's box center horizontally centered in view,
// clamped so the visible strip never leaves the level. The camera freezes
// as soon as the goal sequence begins, matching the original game's
// flag-capture framing.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry).Session

	if session.State() != engine.Running {
		return
	}

	body := session.Body()
	centerX := float64(body.Box.X) + float64(body.Box.W)/2

	targetX := centerX - float64(config.C.Width)/2
	maxX := float64(session.World().Width() - config.C.Width)
	camera.X = math.Max(0, math.Min(maxX, targetX))
}
