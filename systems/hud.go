package systems

import (
	"image/color"

	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawFade covers the screen with the fade color at the current alpha.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fadeEntry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(fadeEntry)
	if fade.Alpha <= 0 {
		return
	}

	vector.DrawFilledRect(screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		scaleAlpha(cfg.Fade.Color, fade.Alpha), false)
}

// scaleAlpha returns c with its (premultiplied) channels scaled by a.
func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
