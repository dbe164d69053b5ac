package factory

import (
	"github.com/automoto/tilecrawl/archetypes"
	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/automoto/tilecrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its feet centred on pos.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	objData := components.ObjectData{Object: obj}
	objData.MoveTo(pos)
	components.Object.SetValue(player, objData)
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Speed:    behavior.NewProgressive(cfg.Player.Speed, cfg.Player.MaxSpeed, cfg.Player.RampFrames),
		Regen:    behavior.NewTimer(cfg.Player.RegenFrames),
		Facing:   cfg.DirectionRight,
		Playable: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Vitals: behavior.Vitals{Current: cfg.Player.StartHealth, Max: cfg.Player.MaxHealth},
	})
	components.Animation.Set(player, GenerateAnimations("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight))

	return player
}
