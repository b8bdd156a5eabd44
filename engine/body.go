package engine

import "math"

// Body is the actor's kinematic state: authoritative float position, float
// velocity and the integer bounding box used for collision and rendering.
// Outside of an in-progress Step, Box's top-left always equals the truncated
// position.
type Body struct {
	PosX, PosY float64
	VelX, VelY float64
	Box        Rect
	OnGround   bool
}

// NewBody places a w×h body with its top-left at (x, y), at rest and airborne.
func NewBody(x, y, w, h int) *Body {
	return &Body{
		PosX: float64(x),
		PosY: float64(y),
		Box:  Rect{X: x, Y: y, W: w, H: h},
	}
}

// Step advances the body one fixed tick: horizontal intent, jump, gravity,
// then move-and-resolve per axis. Resolution is sequential over the candidates
// each axis pass returns; with overlapping obstacles the last applied clamp
// wins, an accepted approximation rather than exact sweep physics.
func (b *Body) Step(in Input, w *StaticWorld, t Tuning) {
	accel := t.WalkAccel
	maxSpeed := t.MaxWalkSpeed
	if in.Run {
		accel = t.RunAccel
		maxSpeed = t.MaxRunSpeed
	}

	switch {
	case in.Left && !in.Right:
		b.VelX -= accel
	case in.Right && !in.Left:
		b.VelX += accel
	default:
		// Friction decelerates toward zero and clamps there; it never flips
		// the sign of the velocity on its own.
		if b.VelX > 0 {
			b.VelX = math.Max(0, b.VelX-t.Friction)
		} else if b.VelX < 0 {
			b.VelX = math.Min(0, b.VelX+t.Friction)
		}
	}

	if b.VelX > maxSpeed {
		b.VelX = maxSpeed
	} else if b.VelX < -maxSpeed {
		b.VelX = -maxSpeed
	}

	if in.Jump && b.OnGround {
		b.VelY = t.JumpVelocity
		b.OnGround = false
	}

	b.VelY = math.Min(b.VelY+t.Gravity, t.MaxFallSpeed)

	// Horizontal move + resolve. Position truncates toward zero into the box;
	// negative coordinates never occur in shipped levels.
	b.PosX += b.VelX
	b.Box.X = int(b.PosX)
	for _, id := range w.Colliders(b.Box) {
		p := w.RectOf(id)
		if !b.Box.Intersects(p) {
			continue
		}
		if b.VelX > 0 {
			b.Box.X = p.X - b.Box.W
		} else if b.VelX < 0 {
			b.Box.X = p.Right()
		}
		b.PosX = float64(b.Box.X)
		b.VelX = 0
	}

	// Vertical move + resolve. OnGround is recomputed from scratch: only a
	// downward clamp this tick sets it.
	b.PosY += b.VelY
	b.Box.Y = int(b.PosY)
	b.OnGround = false
	for _, id := range w.Colliders(b.Box) {
		p := w.RectOf(id)
		if !b.Box.Intersects(p) {
			continue
		}
		if b.VelY > 0 {
			b.Box.Y = p.Y - b.Box.H
			b.OnGround = true
		} else if b.VelY < 0 {
			b.Box.Y = p.Bottom()
		}
		b.PosY = float64(b.Box.Y)
		b.VelY = 0
	}
}
