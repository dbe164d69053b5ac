package behavior

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Progressive is a value that ramps from Min to Max over a number of frames
// while it keeps being walked, and drops back to Min on reset.
type Progressive struct {
	Min, Max float64

	tween *gween.Tween
	value float64
}

// NewProgressive eases from min to max over frames with ease.InQuad.
func NewProgressive(min, max float64, frames int) *Progressive {
	return NewProgressiveWithEasing(min, max, frames, ease.InQuad)
}

func NewProgressiveWithEasing(min, max float64, frames int, easing ease.TweenFunc) *Progressive {
	return &Progressive{
		Min:   min,
		Max:   max,
		tween: gween.New(float32(min), float32(max), float32(frames), easing),
		value: min,
	}
}

// Walk advances the ramp by one frame, or resets it to Min when reset is
// set, and returns the current value.
func (p *Progressive) Walk(reset bool) float64 {
	if reset {
		p.tween.Reset()
		p.value = p.Min
		return p.value
	}
	v, _ := p.tween.Update(1)
	p.value = float64(v)
	return p.value
}

func (p *Progressive) Value() float64 {
	return p.value
}
