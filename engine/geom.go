// Package engine implements the fixed-timestep platformer simulation: static
// tile worlds with a uniform spatial grid, an axis-separated kinematic body,
// the fixed-step clock and the per-level play session. It has no rendering or
// input-device dependencies — callers feed it one Input snapshot per tick and
// read the resulting state back.
package engine

// Rect is an axis-aligned box in whole world pixels. Tiles, the goal region
// and the body's bounding box are all integer rects; sub-pixel state lives on
// the Body as floats and is truncated into its rect each step.
type Rect struct {
	X, Y, W, H int
}

// RectID is a stable handle into a StaticWorld's rectangle arena. The spatial
// grid stores handles rather than rectangle copies so a rect spanning several
// cells dedups to a single query result.
type RectID int

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports exact overlap. Edge-touching rects do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Inflate grows the rect by dw and dh in total, keeping it centered: each side
// moves out by half the growth. Matches the margin expansion collider queries
// use to catch edge-touch cases one sub-pixel move away.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}
