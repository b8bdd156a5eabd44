package systems

import (
	"testing"

	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"

	"github.com/stretchr/testify/assert"
)

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	// Held down this frame, up last frame
	input.Current[cfg.ActionJump] = true
	state := GetAction(&input, cfg.ActionJump)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)
	assert.False(t, state.JustReleased)

	// Still held
	input.Previous = input.Current
	state = GetAction(&input, cfg.ActionJump)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)
	assert.False(t, state.JustReleased)

	// Released
	input.Current[cfg.ActionJump] = false
	state = GetAction(&input, cfg.ActionJump)
	assert.False(t, state.Pressed)
	assert.False(t, state.JustPressed)
	assert.True(t, state.JustReleased)
}

func TestGetActionUntouched(t *testing.T) {
	var input components.InputData
	state := GetAction(&input, cfg.ActionMoveLeft)
	assert.Equal(t, components.ActionState{}, state)
}
