package systems

import (
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
