package systems

import (
	"fmt"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/fonts"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level label in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)

	label := fmt.Sprintf("LEVEL %d-%d",
		(s.LevelIndex-1)/cfg.Overworld.Columns+1,
		(s.LevelIndex-1)%cfg.Overworld.Columns+1)

	face := fonts.Regular.Get()
	text.Draw(screen, label, face,
		int(cfg.UI.HUDMargin), int(cfg.UI.HUDMargin)+18, cfg.White)
}
