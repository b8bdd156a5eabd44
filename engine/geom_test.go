package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 40, H: 40}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"full overlap", Rect{110, 110, 10, 10}, true},
		{"partial overlap", Rect{130, 130, 40, 40}, true},
		{"one pixel overlap", Rect{139, 139, 40, 40}, true},
		{"edge touch right", Rect{140, 100, 40, 40}, false},
		{"edge touch below", Rect{100, 140, 40, 40}, false},
		{"corner touch", Rect{140, 140, 40, 40}, false},
		{"disjoint", Rect{300, 300, 40, 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
}

func TestRectInflate(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 32, H: 32}
	got := r.Inflate(2, 2)
	assert.Equal(t, Rect{X: 99, Y: 199, W: 34, H: 34}, got)

	// Inflation keeps the center fixed.
	assert.Equal(t, r.X+r.W/2, got.X+got.W/2)
	assert.Equal(t, r.Y+r.H/2, got.Y+got.H/2)
}
