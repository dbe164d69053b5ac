package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay on the debug action.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.ShowColliders {
		drawColliders(ecs, screen)
	}
	if cfg.Debug.Enabled {
		drawStats(ecs, screen)
	}
}

func drawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if obj.X+obj.W < v.minX || obj.X > v.maxX || obj.Y+obj.H < v.minY || obj.Y > v.maxY {
			continue
		}

		x := float32(obj.X + v.camX)
		y := float32(obj.Y + v.camY)
		w, h := float32(obj.W), float32(obj.H)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvTeleport):
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		dst, ok := components.Melee.Get(e).Brain.Destination()
		if !ok {
			return
		}
		vector.DrawFilledRect(screen, float32(dst.X+v.camX)-1, float32(dst.Y+v.camY)-1, 2, 2, cfg.Magenta, false)
	})
}

func drawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		feet := components.Object.Get(playerEntry).Feet()
		msg += fmt.Sprintf("\nHP: %d/%d  X: %.0f Y: %.0f", hp.Current, hp.Max, feet.X, feet.Y)
	}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			msg += fmt.Sprintf("\n%s (missing tiles: %d)", level.Name, level.Missing)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}
