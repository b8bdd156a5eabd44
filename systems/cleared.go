package systems

import (
	"image/color"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/fonts"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCleared creates the system that watches the session for the end
// of the goal sequence. On completion it unlocks the next level and fades
// in the overlay; an abort returns straight to the overworld.
func NewUpdateCleared(sceneChanger SceneChanger, createOverworldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		sessionEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		s := components.Session.Get(sessionEntry)
		cleared := components.Cleared.Get(sessionEntry)

		if s.Session.Aborted() {
			sceneChanger.ChangeScene(createOverworldScene())
			return
		}

		if s.Session.Complete() && !cleared.Active {
			cleared.Active = true
			cleared.Fade = gween.New(0, cfg.Clear.OverlayAlpha, cfg.Clear.OverlayFadeSecs, ease.Linear)
			UnlockLevel(e, s.LevelIndex)
		}

		if !cleared.Active {
			return
		}

		alpha, _ := cleared.Fade.Update(1.0 / float32(cfg.Sim.TickRate))
		cleared.Alpha = alpha

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createOverworldScene())
		}
	}
}

// DrawCleared renders the level clear overlay
func DrawCleared(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	cleared := components.Cleared.Get(sessionEntry)
	if !cleared.Active {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := color.RGBA{0, 0, 0, uint8(cleared.Alpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	titleFont := fonts.Title.Get()
	title := "LEVEL CLEAR!"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-20, cfg.UI.TitleColor)

	hintFont := fonts.Regular.Get()
	hint := "Press ENTER to continue"
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+30, cfg.White)
}
