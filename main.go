package main

import (
	"flag"
	"image"
	"log"

	"github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/fonts"
	"github.com/samsoft/brickrun/scenes"
	"github.com/samsoft/brickrun/systems"

	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadAll()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipOverworld {
		g.scene = scenes.NewLevelScene(g, 1)
	} else {
		g.scene = scenes.NewOverworldScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipOverworld, "level1", false, "skip the overworld and start level 1")
	flag.StringVar(&config.Debug.LevelDir, "levels", "", "load TMX levels from this directory instead of generating")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "extra seed mixed into procedural level generation")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Brick Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
