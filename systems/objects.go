package systems

import (
	"github.com/automoto/tilecrawl/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object with its cells in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
