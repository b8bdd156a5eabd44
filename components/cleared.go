package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ClearedData drives the overlay shown after the goal sequence finishes.
// Fade ramps the overlay alpha in once the session reports completion.
type ClearedData struct {
	Active bool
	Fade   *gween.Tween
	Alpha  float32
}

var Cleared = donburi.NewComponentType[ClearedData]()
