package components

import (
	"time"

	"github.com/samsoft/brickrun/engine"

	"github.com/yohamta/donburi"
)

// SessionData holds the running physics session for the current level.
// The ECS owns scheduling and presentation; all movement and collision
// state lives inside Session and advances only through StepOnce.
type SessionData struct {
	Session    *engine.Session
	Clock      *engine.FixedStep
	LevelIndex int       // 1-based level number
	LastTime   time.Time // wall-clock time of the previous frame
}

var Session = donburi.NewComponentType[SessionData]()
