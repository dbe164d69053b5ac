package factory

import (
	"github.com/automoto/tilecrawl/archetypes"
	"github.com/automoto/tilecrawl/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, center math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: center})
}
