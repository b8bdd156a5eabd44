package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/systems"
	"github.com/samsoft/brickrun/systems/factory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// OverworldScene displays the level select map
type OverworldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewOverworldScene creates a new overworld scene
func NewOverworldScene(sc SceneChanger) *OverworldScene {
	return &OverworldScene{sceneChanger: sc}
}

func (ow *OverworldScene) Update() {
	ow.once.Do(ow.configure)
	ow.ecs.Update()
}

func (ow *OverworldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ow.ecs == nil {
		return
	}
	ow.ecs.Draw(screen)
}

func (ow *OverworldScene) configure() {
	ow.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateOverworld(ow.ecs)
	if saved, err := systems.LoadProgress(); err == nil {
		systems.ApplySavedProgress(ow.ecs, saved)
	}

	createLevelScene := func(level int) interface{} {
		return NewLevelScene(ow.sceneChanger, level)
	}

	ow.ecs.AddSystem(systems.UpdateInput)
	ow.ecs.AddSystem(systems.NewUpdateOverworld(ow.sceneChanger, createLevelScene))

	ow.ecs.AddRenderer(cfg.Default, systems.DrawOverworld)
}
