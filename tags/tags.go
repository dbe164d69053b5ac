package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Wall     = donburi.NewTag().SetName("Wall")
	Teleport = donburi.NewTag().SetName("Teleport")
)

// Resolv tags for collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvTeleport = "teleport"
)
