package systems

import (
	"testing"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingSceneChanger struct {
	changed interface{}
}

func (r *recordingSceneChanger) ChangeScene(scene interface{}) { r.changed = scene }

func overworldWorld(t *testing.T, unlocked, selected int) (*ecs.ECS, *components.OverworldData, *components.InputData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	owEntry := e.World.Entry(e.World.Create(components.Overworld))
	components.Overworld.SetValue(owEntry, components.OverworldData{
		Unlocked: unlocked,
		Selected: selected,
	})

	inputEntry := e.World.Entry(e.World.Create(components.Input))
	return e, components.Overworld.Get(owEntry), components.Input.Get(inputEntry)
}

func TestOverworldCursorStopsAtFrontier(t *testing.T) {
	sc := &recordingSceneChanger{}
	system := NewUpdateOverworld(sc, func(level int) interface{} { return level })

	// Three levels open, cursor on the last of them: right must not move
	// onto the locked node.
	e, ow, input := overworldWorld(t, 3, 2)
	input.Current[cfg.ActionMenuRight] = true
	system(e)
	assert.Equal(t, 2, ow.Selected)

	// Down jumps a whole row; with only the first row's levels open it
	// always lands on a locked node and must be refused too.
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuDown] = true
	system(e)
	assert.Equal(t, 2, ow.Selected)
}

func TestOverworldCursorMovesWithinUnlocked(t *testing.T) {
	sc := &recordingSceneChanger{}
	system := NewUpdateOverworld(sc, func(level int) interface{} { return level })

	e, ow, input := overworldWorld(t, 5, 2)
	input.Current[cfg.ActionMenuRight] = true
	system(e)
	assert.Equal(t, 3, ow.Selected)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuLeft] = true
	system(e)
	assert.Equal(t, 2, ow.Selected)
}

func TestOverworldEnterOpensSelectedLevel(t *testing.T) {
	sc := &recordingSceneChanger{}
	system := NewUpdateOverworld(sc, func(level int) interface{} { return level })

	e, _, input := overworldWorld(t, 3, 1)
	input.Current[cfg.ActionMenuSelect] = true
	system(e)

	// Level numbers are 1-based; node index 1 is level 2.
	assert.Equal(t, 2, sc.changed)
}
