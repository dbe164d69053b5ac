package systems

import (
	"github.com/automoto/tilecrawl/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var levelOp = &ebiten.DrawImageOptions{}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	// Camera-relative, then centred on screen
	levelOp.GeoM.Reset()
	levelOp.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	levelOp.GeoM.Translate(float64(width)/2, float64(height)/2)
	screen.DrawImage(levelData.CurrentLevel.Background, levelOp)
}
