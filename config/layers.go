package config

import "github.com/yohamta/donburi/ecs"

// ECS layers
const (
	Default = ecs.LayerDefault
)
