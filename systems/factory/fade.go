package factory

import (
	"github.com/automoto/tilecrawl/archetypes"
	"github.com/automoto/tilecrawl/components"
	"github.com/automoto/tilecrawl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Fade.Spawn(ecs)
	frames := float32(config.Fade.Frames)
	components.Fade.Set(entry, &components.FadeData{
		Out: gween.New(0, 1, frames, ease.InQuad),
		In:  gween.New(1, 0, frames, ease.OutQuad),
	})
	return entry
}
