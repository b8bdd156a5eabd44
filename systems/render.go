package systems

import (
	"image/color"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips draw calls for tiles that are currently off-screen.
// A small margin prevents tiles from popping in/out at the edges.

// DrawLevel renders the visible strip of the level: sky, bricks, the goal
// flag and the player, all offset by the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry).Session

	camX := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camX = components.Camera.Get(cameraEntry).X
	}

	screen.Fill(cfg.UI.SkyColor)

	view := engine.Rect{
		X: int(camX) - cfg.Camera.ViewMargin,
		Y: 0,
		W: cfg.C.Width + 2*cfg.Camera.ViewMargin,
		H: cfg.C.Height,
	}

	for _, tile := range session.World().Tiles() {
		if tile.Rect.Right() < view.X || tile.Rect.X > view.Right() {
			continue
		}
		drawWorldRect(screen, tile.Rect, camX, cfg.UI.BrickColor)
	}

	drawFlag(screen, session.World().Goal(), camX)
	drawWorldRect(screen, session.Body().Box, camX, cfg.UI.PlayerColor)
}

func drawFlag(screen *ebiten.Image, goal engine.Rect, camX float64) {
	drawWorldRect(screen, goal, camX, cfg.UI.FlagPoleColor)

	// Cloth at the top of the pole, pointing left
	cloth := engine.Rect{
		X: goal.X - goal.W*2,
		Y: goal.Y,
		W: goal.W * 2,
		H: goal.H / 6,
	}
	drawWorldRect(screen, cloth, camX, cfg.UI.FlagClothColor)
}

func drawWorldRect(screen *ebiten.Image, r engine.Rect, camX float64, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(float64(r.X)-camX), float32(r.Y),
		float32(r.W), float32(r.H),
		c, false)
}
