package engine

// Tuning collects every simulation constant. The engine holds no package-level
// configuration; the caller builds a Tuning once and hands it to the session.
type Tuning struct {
	// Vertical
	Gravity      float64 // added to vy every tick
	JumpVelocity float64 // negative impulse applied on jump
	MaxFallSpeed float64 // terminal vy ceiling

	// Horizontal
	WalkAccel    float64
	RunAccel     float64
	Friction     float64 // per-tick deceleration toward zero, never reverses
	MaxWalkSpeed float64
	MaxRunSpeed  float64

	// Clear sequence
	ClearDescentSpeed float64 // auto-descent after goal contact
	ClearWalkSpeed    float64 // auto-walk once settled on ground
	CompletionOffset  int     // cleared once box.X > world width - offset
}
