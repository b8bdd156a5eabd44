package systems

import (
	"fmt"
	"os"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/fonts"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateOverworld creates the level select update system. The cursor
// moves across the node grid and stops at the unlock frontier; everything
// below an unlocked node is unlocked too, so only right/down need the gate.
func NewUpdateOverworld(sceneChanger SceneChanger, createLevelScene func(level int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		ow := GetOrCreateOverworld(e)
		input := getOrCreateInput(e)

		cols := cfg.Overworld.Columns

		sel := ow.Selected
		if GetAction(input, cfg.ActionMenuLeft).JustPressed && sel%cols > 0 {
			sel--
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed && sel%cols < cols-1 && sel+1 < ow.Unlocked {
			sel++
		}
		if GetAction(input, cfg.ActionMenuUp).JustPressed && sel-cols >= 0 {
			sel -= cols
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed && sel+cols < ow.Unlocked {
			sel += cols
		}
		ow.Selected = sel

		if GetAction(input, cfg.ActionMenuSelect).JustPressed && ow.Selected < ow.Unlocked {
			sceneChanger.ChangeScene(createLevelScene(ow.Selected + 1))
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			SaveProgress(e)
			os.Exit(0)
		}
	}
}

// DrawOverworld renders the level select map: a node per level, the
// selection cursor and the castle past the final node.
func DrawOverworld(e *ecs.ECS, screen *ebiten.Image) {
	ow := GetOrCreateOverworld(e)

	screen.Fill(cfg.UI.SkyColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	titleFont := fonts.Title.Get()
	title := "BRICK RUN"
	titleWidth := len(title) * 20 // Approximate width for the title face
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 70, cfg.UI.TitleColor)

	node := float32(cfg.Overworld.NodeSize)
	for i := 0; i < cfg.Level.TotalLevels; i++ {
		x, y := nodePosition(i)

		nodeColor := cfg.UI.NodeColor
		if i >= ow.Unlocked {
			nodeColor = cfg.UI.NodeLockedColor
		}
		vector.DrawFilledRect(screen, x, y, node, node, nodeColor, false)

		if i == ow.Selected {
			cursor := node + 8
			vector.DrawFilledRect(screen, x-4, y-4, cursor, 4, cfg.UI.NodeCursorColor, false)
			vector.DrawFilledRect(screen, x-4, y+node, cursor, 4, cfg.UI.NodeCursorColor, false)
			vector.DrawFilledRect(screen, x-4, y, 4, node, cfg.UI.NodeCursorColor, false)
			vector.DrawFilledRect(screen, x+node, y, 4, node, cfg.UI.NodeCursorColor, false)
		}
	}

	drawCastle(screen)

	label := fmt.Sprintf("LEVEL %d-%d", ow.Selected/cfg.Overworld.Columns+1, ow.Selected%cfg.Overworld.Columns+1)
	text.Draw(screen, label, fonts.Regular.Get(), int(cfg.UI.HUDMargin), int(height)-40, cfg.White)

	hint := "Arrows: Navigate   Enter: Play   Escape: Quit"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.White)
}

// nodePosition returns the top-left screen position of a level node
func nodePosition(i int) (float32, float32) {
	col := i % cfg.Overworld.Columns
	row := i / cfg.Overworld.Columns
	x := cfg.Overworld.OriginX + col*cfg.Overworld.SpacingX
	y := cfg.Overworld.OriginY + row*cfg.Overworld.SpacingY
	return float32(x), float32(y)
}

// drawCastle renders the castle below the final node row
func drawCastle(screen *ebiten.Image) {
	lastX, lastY := nodePosition(cfg.Level.TotalLevels - 1)
	baseX := lastX - 10
	baseY := lastY + float32(cfg.Overworld.SpacingY)

	vector.DrawFilledRect(screen, baseX, baseY+15, 50, 35, cfg.UI.CastleColor, false)
	vector.DrawFilledRect(screen, baseX+5, baseY, 10, 15, cfg.UI.CastleColor, false)
	vector.DrawFilledRect(screen, baseX+20, baseY, 10, 15, cfg.UI.CastleColor, false)
	vector.DrawFilledRect(screen, baseX+35, baseY, 10, 15, cfg.UI.CastleColor, false)
}

// GetOrCreateOverworld returns the singleton Overworld component, creating
// it with level 1 unlocked if needed.
func GetOrCreateOverworld(e *ecs.ECS) *components.OverworldData {
	entry, ok := components.Overworld.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overworld))
		components.Overworld.SetValue(entry, components.OverworldData{Unlocked: 1})
	}
	return components.Overworld.Get(entry)
}
