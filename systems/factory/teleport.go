package factory

import (
	"github.com/automoto/tilecrawl/archetypes"
	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/components"
	"github.com/automoto/tilecrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTeleport(ecs *ecs.ECS, tp assets.Teleport) *donburi.Entry {
	entry := archetypes.Teleport.Spawn(ecs)

	obj := resolv.NewObject(tp.X, tp.Y, tp.Width, tp.Height, tags.ResolvTeleport)
	obj.SetShape(resolv.NewRectangle(0, 0, tp.Width, tp.Height))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Teleport.SetValue(entry, components.TeleportData{Teleport: tp})
	addToSpace(ecs, obj)
	return entry
}
