package systems

import (
	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/components"
	"github.com/automoto/tilecrawl/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StartTeleport fades the screen out toward the teleport's destination.
// It is ignored while a fade is already running.
func StartTeleport(ecs *ecs.ECS, tp assets.Teleport) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	if fade.Phase != components.FadeIdle {
		return
	}

	fade.Phase = components.FadeOut
	fade.Out.Reset()
	fade.In.Reset()
	fade.Destination = tp.Target
	fade.Level = tp.Level
	setPlayable(ecs, false)

	log.Debug().
		Float64("x", tp.Target.X).
		Float64("y", tp.Target.Y).
		Str("level", tp.Level).
		Msg("Teleport started")
}

// BeginFadeIn starts the second half of a fade, used when a teleport
// arrives in a freshly loaded level.
func BeginFadeIn(ecs *ecs.ECS) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	fade.Phase = components.FadeIn
	fade.In.Reset()
	fade.Alpha = 1
	setPlayable(ecs, false)
}

func UpdateFade(ecs *ecs.ECS) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)

	switch fade.Phase {
	case components.FadeOut:
		alpha, done := fade.Out.Update(1)
		fade.Alpha = alpha
		if !done {
			return
		}
		if fade.Level != "" {
			// The scene swaps the level and fades back in.
			if levelEntry, ok := components.Level.First(ecs.World); ok {
				components.Level.Get(levelEntry).NextLevel = fade.Level
			}
			fade.Level = ""
			fade.Phase = components.FadeIdle
			return
		}
		movePlayer(ecs, fade.Destination)
		fade.Phase = components.FadeIn

	case components.FadeIn:
		alpha, done := fade.In.Update(1)
		fade.Alpha = alpha
		if !done {
			return
		}
		fade.Alpha = 0
		fade.Phase = components.FadeIdle
		setPlayable(ecs, true)
	}
}

// movePlayer places the player's feet at p and recenters the camera.
func movePlayer(ecs *ecs.ECS, p math.Vec2) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	obj.MoveTo(p)
	CenterCamera(ecs, obj.Center())
}

func setPlayable(ecs *ecs.ECS, playable bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}
	player.Playable = playable
}
