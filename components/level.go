package components

import (
	"github.com/automoto/tilecrawl/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	// NextLevel is set when a teleport leads to another level. The scene
	// swaps levels once the fade out completes.
	NextLevel string
}

var Level = donburi.NewComponentType[LevelData]()
