package engine

// maxPendingTicks caps the accumulator so a long stall (window drag, debugger
// pause) drains as a bounded burst instead of a catch-up spiral.
const maxPendingTicks = 8

// FixedStep converts variable wall-clock frame time into a constant simulation
// rate. Each frame the shell reports elapsed seconds; the accumulator is
// drained in whole tick-duration increments, so physics advances in fixed
// quanta regardless of rendering jitter.
type FixedStep struct {
	step float64
	acc  float64
}

// NewFixedStep returns a scheduler ticking at the given rate (ticks per
// second).
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		panic("engine: tick rate must be positive")
	}
	return &FixedStep{step: 1.0 / float64(tickRate)}
}

// Step returns the fixed tick duration in seconds.
func (f *FixedStep) Step() float64 { return f.step }

// Advance adds elapsed wall-clock seconds and invokes tick once per whole step
// accumulated, returning how many ticks ran. Zero, one or several ticks per
// rendered frame are all normal.
func (f *FixedStep) Advance(elapsed float64, tick func()) int {
	f.acc += elapsed
	if limit := f.step * maxPendingTicks; f.acc > limit {
		f.acc = limit
	}

	n := 0
	for f.acc >= f.step {
		tick()
		f.acc -= f.step
		n++
	}
	return n
}
