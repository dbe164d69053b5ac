package systems

import (
	"github.com/automoto/tilecrawl/components"
	"github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/automoto/tilecrawl/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()

	follow := behavior.Follow{
		Speed:        config.Camera.Speed,
		Acceleration: config.Camera.Acceleration,
		Radius:       config.Camera.Radius,
		Leash:        config.Camera.Leash,
	}
	camera.Position = clampToLevel(e, follow.Step(camera.Position, target, &camera.Speed))
}

// CenterCamera snaps the camera onto p and resets its follow speed.
func CenterCamera(e *ecs.ECS, p math.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = clampToLevel(e, p)
	camera.Speed = 0
}

// clampToLevel keeps the view inside the current level.
func clampToLevel(e *ecs.ECS, p math.Vec2) math.Vec2 {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return p
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return p
	}
	return behavior.ClampView(p,
		float64(config.C.Width), float64(config.C.Height),
		float64(level.Width), float64(level.Height),
	)
}
