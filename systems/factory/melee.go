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

// CreateMelee spawns a melee enemy whose home is pos.
func CreateMelee(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	enemy := archetypes.Melee.Spawn(ecs)

	w, h := float64(cfg.Melee.CollisionWidth), float64(cfg.Melee.CollisionHeight)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	objData := components.ObjectData{Object: obj}
	objData.MoveTo(pos)
	components.Object.SetValue(enemy, objData)
	addToSpace(ecs, obj)

	components.Melee.SetValue(enemy, components.MeleeData{
		Brain:  behavior.NewMelee(objData.Feet(), MeleeConfig()),
		Facing: cfg.DirectionRight,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Vitals: behavior.Vitals{Current: cfg.Melee.Health, Max: cfg.Melee.Health},
	})
	components.Animation.Set(enemy, GenerateAnimations("melee", cfg.Melee.FrameWidth, cfg.Melee.FrameHeight))

	return enemy
}

// MeleeConfig converts the configured melee values for the brain.
func MeleeConfig() behavior.MeleeConfig {
	return behavior.MeleeConfig{
		WanderRadius:   cfg.Melee.WanderRadius,
		TargetRange:    cfg.Melee.TargetRange,
		AttackRangeSq:  cfg.Melee.AttackRangeSq,
		MoveDelay:      cfg.Melee.MoveDelay,
		AttackDelay:    cfg.Melee.AttackDelay,
		AttackDuration: cfg.Melee.AttackDuration,
	}
}
