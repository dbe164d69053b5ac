package components

import (
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	behavior.Vitals
}

var Health = donburi.NewComponentType[HealthData]()
