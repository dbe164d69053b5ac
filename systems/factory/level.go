package factory

import (
	"github.com/automoto/tilecrawl/archetypes"
	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}
