package systems

import (
	"github.com/automoto/tilecrawl/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances the current animation of every actor.
func UpdateAnimations(ecs *ecs.ECS) {
	for e := range components.Animation.Iter(ecs.World) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}
}
