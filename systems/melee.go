package systems

import (
	"math/rand/v2"

	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/automoto/tilecrawl/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rng drives enemy wandering and random spawns.
var Rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// UpdateMelee runs every melee brain against the player.
func UpdateMelee(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	target := components.Object.Get(playerEntry).Feet()

	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		melee := components.Melee.Get(e)
		obj := components.Object.Get(e)

		out := melee.Brain.Update(obj.Feet(), target, Rng)
		melee.Attacking = out.Attacking

		if out.Hit && !player.Dead {
			health := components.Health.Get(playerEntry)
			health.Damage(cfg.Melee.Damage)
			log.Debug().
				Int("hp", health.Current).
				Msg("Player hit")
		}

		if out.Moving {
			before := obj.Feet()
			behavior.MoveBody(obj.Object, out.Step.X, out.Step.Y, tags.ResolvSolid)
			if obj.Feet() == before {
				melee.Brain.Abandon()
			}
			switch {
			case out.Step.X < 0:
				melee.Facing = cfg.DirectionLeft
			case out.Step.X > 0:
				melee.Facing = cfg.DirectionRight
			}
		}

		animData := components.Animation.Get(e)
		switch {
		case out.Attacking:
			animData.SetAnimation(cfg.AnimAttack)
		case out.Moving:
			animData.SetAnimation(cfg.AnimRun)
		default:
			animData.SetAnimation(cfg.AnimIdle)
		}
	})
}
