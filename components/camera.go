package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Speed    float64 // Current follow speed, ramps up to config.Camera.Speed
}

var Camera = donburi.NewComponentType[CameraData]()
