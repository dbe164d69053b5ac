package components

import (
	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/assets/animations"
	"github.com/automoto/tilecrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Sheet            *assets.SpriteSheet
	Row              int
	Animations       map[config.AnimationID]*animations.Animation
	Current          config.AnimationID
	CurrentAnimation *animations.Animation
}

func (a *AnimationData) SetAnimation(id config.AnimationID) {
	if a.Current == id && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[id]
	if !ok {
		return
	}
	a.Current = id
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

// Image returns the frame to draw for the current animation.
func (a *AnimationData) Image() (*ebiten.Image, bool) {
	if a.CurrentAnimation == nil || a.Sheet == nil {
		return nil, false
	}
	return a.Sheet.Frame(a.Row, a.CurrentAnimation.Frame())
}

var Animation = donburi.NewComponentType[AnimationData]()
