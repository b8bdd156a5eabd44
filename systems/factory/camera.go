package factory

import (
	"github.com/samsoft/brickrun/archetypes"
	"github.com/samsoft/brickrun/components"

	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
