package components

import (
	"github.com/yohamta/donburi"
)

// OverworldData tracks level-select state. Unlocked is the highest level
// number the player may enter; Selected is the cursor position.
type OverworldData struct {
	Selected int
	Unlocked int
}

var Overworld = donburi.NewComponentType[OverworldData]()
