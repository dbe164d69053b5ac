package animations

import "github.com/automoto/tilecrawl/config"

// Animation steps through a column range of a sprite sheet row.
type Animation struct {
	First        int
	Last         int
	SpeedInTicks int // how many ticks before next frame
	Loop         bool
	Looped       bool // set once the last frame has been shown

	counter int
	frame   int
}

func (a *Animation) Update() {
	a.counter--
	if a.counter >= 0 {
		return
	}
	a.counter = a.SpeedInTicks
	if a.frame < a.Last {
		a.frame++
		return
	}
	a.Looped = true
	if a.Loop {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.SpeedInTicks
	a.Looped = false
}

func NewAnimation(def config.AnimationDef) *Animation {
	return &Animation{
		First:        def.First,
		Last:         def.Last,
		SpeedInTicks: def.Speed,
		Loop:         def.Loop,
		counter:      def.Speed,
		frame:        def.First,
	}
}
