package systems

import (
	"math"

	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Actors outside the view plus this padding are not drawn.
const cullPadding = 64.0

type view struct {
	camX, camY             float64 // screen offset of the world origin
	minX, maxX, minY, maxY float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		camX: width/2 - camera.Position.X,
		camY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - cullPadding,
		maxX: camera.Position.X + width/2 + cullPadding,
		minY: camera.Position.Y - height/2 - cullPadding,
		maxY: camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v view) culled(o *components.ObjectData) bool {
	return o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY
}

// DrawActors renders every animated actor, anchored at the bottom-centre of
// its collision box and mirrored when it faces left.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		animData := components.Animation.Get(e)
		img, ok := animData.Image()
		if !ok {
			// Fallback to rectangle if no frame is available
			vector.DrawFilledRect(screen, float32(o.X+v.camX), float32(o.Y+v.camY), float32(o.W), float32(o.H), cfg.Magenta, false)
			return
		}

		fw, fh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-fw/2, -fh)
		if facing(e) < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}

		feet := o.Feet()
		drawOp.GeoM.Translate(math.Round(feet.X+v.camX), math.Round(feet.Y+v.camY))
		screen.DrawImage(img, drawOp)
	})
}

func facing(e *donburi.Entry) float64 {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Facing
	case e.HasComponent(components.Melee):
		return components.Melee.Get(e).Facing
	}
	return cfg.DirectionRight
}

// DrawHealthBars draws a bar above every living actor: a grey background
// of fixed length and a red fill proportional to its hit points.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}
		if e.HasComponent(components.Player) && components.Player.Get(e).Dead {
			return
		}

		spriteHeight := float64(cfg.Player.FrameHeight)
		if e.HasComponent(components.Animation) {
			if img, ok := components.Animation.Get(e).Image(); ok {
				spriteHeight = float64(img.Bounds().Dy())
			}
		}

		hp := components.Health.Get(e)
		feet := o.Feet()
		x := feet.X - cfg.HUD.BarLength/2 + v.camX
		y := feet.Y - spriteHeight - cfg.HUD.BarOffsetY - cfg.HUD.BarHeight + v.camY
		fill := math.Min(float64(hp.Current)*cfg.HUD.PixelsPerHP, cfg.HUD.BarLength)

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(cfg.HUD.BarLength), float32(cfg.HUD.BarHeight), cfg.HUD.BgColor, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), float32(cfg.HUD.BarHeight), cfg.HUD.FgColor, false)
	})
}
