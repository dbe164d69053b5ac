package systems

import (
	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/automoto/tilecrawl/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	if player.Dead {
		animData.SetAnimation(cfg.AnimDie)
		if animData.CurrentAnimation != nil && animData.CurrentAnimation.Looped {
			respawnPlayer(ecs, playerEntry)
		}
		return
	}

	health.Regen(player.Regen)

	if !player.Playable {
		player.Moving = false
		player.Speed.Walk(true)
		animData.SetAnimation(cfg.AnimIdle)
		return
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDie).JustPressed || !health.Alive() {
		killPlayer(playerEntry)
		return
	}

	handlePlayerMovement(input, playerEntry, player)

	if player.Moving {
		animData.SetAnimation(cfg.AnimRun)
	} else {
		animData.SetAnimation(cfg.AnimIdle)
	}

	checkTeleports(ecs, playerEntry)
}

func handlePlayerMovement(input *components.InputData, playerEntry *donburi.Entry, player *components.PlayerData) {
	obj := components.Object.Get(playerEntry).Object

	move := behavior.MoveInput{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Up:    GetAction(input, cfg.ActionMoveUp).Pressed,
		Down:  GetAction(input, cfg.ActionMoveDown).Pressed,
	}

	speed := player.Speed.Walk(!move.Any())
	walkable := behavior.WalkableSides(behavior.BlockedSides(obj, tags.ResolvSolid))
	dx, dy, facing := behavior.Steer(move, walkable, speed)

	switch facing {
	case -1:
		player.Facing = cfg.DirectionLeft
	case 1:
		player.Facing = cfg.DirectionRight
	}

	player.Moving = dx != 0 || dy != 0
	if player.Moving {
		behavior.MoveBody(obj, dx, dy, tags.ResolvSolid)
	}
}

func killPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.Dead = true
	player.Playable = false
	player.Moving = false

	obj := components.Object.Get(playerEntry)
	log.Info().
		Float64("x", obj.X).
		Float64("y", obj.Y).
		Msg("Player died")
}

// respawnPlayer puts a dead player back on the level spawn with starting
// health.
func respawnPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	player := components.Player.Get(playerEntry)
	player.Dead = false
	player.Playable = true
	player.Speed.Walk(true)

	health := components.Health.Get(playerEntry)
	health.Current = cfg.Player.StartHealth

	components.Animation.Get(playerEntry).SetAnimation(cfg.AnimIdle)
	movePlayer(ecs, level.Spawn)
}

// checkTeleports starts a teleport when the player steps on a pad.
func checkTeleports(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry).Object
	check := obj.Check(0, 0, tags.ResolvTeleport)
	if check == nil {
		return
	}
	for _, pad := range check.ObjectsByTags(tags.ResolvTeleport) {
		padEntry, ok := pad.Data.(*donburi.Entry)
		if !ok || !padEntry.Valid() || !padEntry.HasComponent(components.Teleport) {
			continue
		}
		feet := components.Object.Get(playerEntry).Feet()
		if feet.X < pad.X || feet.X >= pad.X+pad.W || feet.Y < pad.Y || feet.Y > pad.Y+pad.H {
			continue
		}
		StartTeleport(ecs, components.Teleport.Get(padEntry).Teleport)
		return
	}
}
