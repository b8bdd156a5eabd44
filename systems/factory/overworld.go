package factory

import (
	"github.com/samsoft/brickrun/archetypes"
	"github.com/samsoft/brickrun/components"

	"github.com/yohamta/donburi/ecs"
)

// CreateOverworld spawns the level select singleton with only level 1 open.
// Saved progress is applied on top afterwards.
func CreateOverworld(ecs *ecs.ECS) {
	if _, ok := components.Overworld.First(ecs.World); ok {
		return
	}
	ow := archetypes.Overworld.Spawn(ecs)
	components.Overworld.Set(ow, &components.OverworldData{Unlocked: 1})
}
