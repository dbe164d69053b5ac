package factory

import (
	"fmt"

	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/assets/animations"
	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
)

// GenerateAnimations creates an AnimationData component for a character key
// (e.g. "player", "melee") from its row of the actor sprite sheet.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	def, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Sheet:      assets.GetSheet(assets.ActorSheet, frameWidth, frameHeight),
		Row:        def.Row,
		Animations: make(map[cfg.AnimationID]*animations.Animation, len(def.Animations)),
	}
	for id, a := range def.Animations {
		animData.Animations[id] = animations.NewAnimation(a)
	}
	animData.SetAnimation(cfg.AnimIdle)
	return animData
}
