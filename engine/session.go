package engine

// State is the actor's lifecycle across one play session.
type State int

const (
	// Running: normal input-driven physics every tick.
	Running State = iota
	// ClearingDescent: goal contact made; input is ignored and the body
	// auto-settles down to the ground row.
	ClearingDescent
	// ClearingWalk: settled; the body auto-walks toward the level's far edge.
	ClearingWalk
	// Cleared: terminal. The session no longer advances.
	Cleared
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ClearingDescent:
		return "clearing-descent"
	case ClearingWalk:
		return "clearing-walk"
	case Cleared:
		return "cleared"
	}
	return "unknown"
}

// Session owns one body, one static world and the lifecycle state machine for
// a single playable level. It is the context object the shell drives: one
// StepOnce per drained fixed tick, never concurrently.
type Session struct {
	world   *StaticWorld
	body    *Body
	tuning  Tuning
	state   State
	aborted bool

	// settleY is the ground line the clear descent sinks to: the top of the
	// bottom tile row.
	settleY int
}

func NewSession(w *StaticWorld, b *Body, t Tuning, tileSize int) *Session {
	return &Session{
		world:   w,
		body:    b,
		tuning:  t,
		settleY: w.Height() - tileSize,
	}
}

// StepOnce advances the session by exactly one fixed tick. in is only consulted
// in the Running state; the clear sequence is automatic. After a normal step
// the goal region is checked once, and contact freezes the body's velocities
// and starts the clear sequence on that same tick.
func (s *Session) StepOnce(in Input) {
	if s.aborted {
		return
	}

	switch s.state {
	case Running:
		s.body.Step(in, s.world, s.tuning)
		if s.body.Box.Intersects(s.world.Goal()) {
			s.state = ClearingDescent
			s.body.VelX = 0
			s.body.VelY = 0
		}
	case ClearingDescent:
		if s.body.Box.Bottom() < s.settleY {
			s.body.PosY += s.tuning.ClearDescentSpeed
			s.body.Box.Y = int(s.body.PosY)
		} else {
			s.state = ClearingWalk
		}
	case ClearingWalk:
		s.body.PosX += s.tuning.ClearWalkSpeed
		s.body.Box.X = int(s.body.PosX)
		if s.body.Box.X > s.world.Width()-s.tuning.CompletionOffset {
			s.state = Cleared
		}
	case Cleared:
		// terminal
	}
}

// Abort ends the session between ticks (quit/escape). Idempotent.
func (s *Session) Abort() { s.aborted = true }

func (s *Session) State() State   { return s.state }
func (s *Session) Complete() bool { return s.state == Cleared }
func (s *Session) Aborted() bool  { return s.aborted }

// Body exposes the actor for rendering and camera sync. Callers must not
// mutate it.
func (s *Session) Body() *Body { return s.body }

// World exposes the level geometry for rendering.
func (s *Session) World() *StaticWorld { return s.world }
