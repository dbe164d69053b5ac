package components

import (
	"github.com/automoto/tilecrawl/assets"
	"github.com/yohamta/donburi"
)

type TeleportData struct {
	assets.Teleport
}

var Teleport = donburi.NewComponentType[TeleportData]()
