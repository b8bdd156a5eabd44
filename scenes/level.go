package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/systems"
	"github.com/samsoft/brickrun/systems/factory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one level's physics session
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        int
	once         sync.Once
}

// NewLevelScene creates a scene for the given 1-based level number
func NewLevelScene(sc SceneChanger, level int) *LevelScene {
	return &LevelScene{sceneChanger: sc, level: level}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	if _, err := factory.CreateSession(ls.ecs, ls.level); err != nil {
		// A broken level file should not kill the game; fall back to the map.
		log.Printf("Could not start level %d: %v", ls.level, err)
		ls.sceneChanger.ChangeScene(NewOverworldScene(ls.sceneChanger))
		return
	}
	factory.CreateCamera(ls.ecs)

	createOverworldScene := func() interface{} {
		return NewOverworldScene(ls.sceneChanger)
	}

	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.UpdateSimulation)
	ls.ecs.AddSystem(systems.UpdateCamera)
	ls.ecs.AddSystem(systems.NewUpdateCleared(ls.sceneChanger, createOverworldScene))

	ls.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawCleared)
}
