package components

import (
	"github.com/yohamta/donburi"
)

type CameraData struct {
	X float64 // left edge of the visible strip in level coordinates
}

var Camera = donburi.NewComponentType[CameraData]()
