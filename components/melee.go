package components

import (
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/yohamta/donburi"
)

type MeleeData struct {
	Brain     *behavior.Melee
	Facing    float64
	Attacking bool
}

var Melee = donburi.NewComponentType[MeleeData]()
