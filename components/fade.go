package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type FadePhase int

const (
	FadeIdle FadePhase = iota
	FadeOut
	FadeIn
)

// FadeData drives the teleport transition: fade to black, move the player,
// fade back in.
type FadeData struct {
	Phase       FadePhase
	Out         *gween.Tween
	In          *gween.Tween
	Alpha       float32
	Destination math.Vec2
	Level       string // Non-empty when the destination is another level
}

var Fade = donburi.NewComponentType[FadeData]()
