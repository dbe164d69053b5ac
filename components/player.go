package components

import (
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed  *behavior.Progressive // Ramps while moving, resets when idle
	Regen  *behavior.Timer
	Facing float64 // config.DirectionLeft or config.DirectionRight
	Moving bool
	// Playable is false while a teleport fade is running or after death.
	Playable bool
	Dead     bool
}

var Player = donburi.NewComponentType[PlayerData]()
