package archetypes

import (
	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
		components.Cleared,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Overworld = newArchetype(
		components.Overworld,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
