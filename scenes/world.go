package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tilecrawl/assets"
	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/shared/behavior"
	"github.com/automoto/tilecrawl/systems"
	"github.com/automoto/tilecrawl/systems/factory"
	"github.com/automoto/tilecrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Attempts at finding a wall-free spot for a randomly placed enemy.
const spawnAttempts = 10

type WorldScene struct {
	ecs     *ecs.ECS
	loader  *assets.LevelLoader
	level   string
	restore *systems.SavedSession
	once    sync.Once
}

// NewWorldScene creates the dungeon scene starting at levelPath. A non-nil
// restore places the player where the session was saved.
func NewWorldScene(levelPath string, restore *systems.SavedSession) *WorldScene {
	if restore != nil && restore.Level != "" {
		levelPath = restore.Level
	}
	return &WorldScene{
		loader:  assets.NewLevelLoader(),
		level:   levelPath,
		restore: restore,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if next := ws.nextLevel(); next != "" {
		ws.swapLevel(next)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level := ws.loader.MustLoadLevel(ws.level)

	health := cfg.Player.StartHealth
	var pos *math.Vec2
	if ws.restore != nil {
		health = ws.restore.Health
		pos = &math.Vec2{X: ws.restore.X, Y: ws.restore.Y}
	}
	ws.ecs = ws.build(level, health, pos)
}

func (ws *WorldScene) build(level *assets.Level, health int, pos *math.Vec2) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems, skipped while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMelee))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFade))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	// Level first: the camera clamps against it.
	factory.CreateLevel(ecs, level)
	factory.CreateSpace(ecs, level.Width, level.Height, level.TileWidth, level.TileHeight)
	factory.CreateFade(ecs)

	for _, tile := range level.SolidTiles {
		factory.CreateWall(ecs, tile.X, tile.Y, tile.Width, tile.Height)
	}
	for _, tp := range level.Teleports {
		factory.CreateTeleport(ecs, tp)
	}

	start := level.Spawn
	if pos != nil {
		start = *pos
	}
	player := factory.CreatePlayer(ecs, start)
	playerHealth := components.Health.Get(player)
	playerHealth.Current = max(1, min(health, playerHealth.Max))

	factory.CreateCamera(ecs, components.Object.Get(player).Center())
	systems.CenterCamera(ecs, components.Object.Get(player).Center())

	ws.spawnMelee(ecs, level)

	log.Info().
		Str("level", level.Name).
		Int("walls", len(level.SolidTiles)).
		Int("teleports", len(level.Teleports)).
		Msg("Level ready")
	return ecs
}

// spawnMelee places the level's melee enemies, or random ones around the
// spawn point when the map defines none.
func (ws *WorldScene) spawnMelee(e *ecs.ECS, level *assets.Level) {
	if len(level.MeleeSpawns) > 0 {
		for _, p := range level.MeleeSpawns {
			factory.CreateMelee(e, p)
		}
		return
	}

	for range cfg.C.MeleePerRoom {
		enemy := factory.CreateMelee(e, randomSpawn(level))
		obj := components.Object.Get(enemy)
		for try := 0; try < spawnAttempts && obj.Check(0, 0, tags.ResolvSolid) != nil; try++ {
			obj.MoveTo(randomSpawn(level))
		}
		components.Melee.Get(enemy).Brain.Home = obj.Feet()
	}
}

func randomSpawn(level *assets.Level) math.Vec2 {
	off := behavior.RandomCoordInRadius(systems.Rng, cfg.C.SpawnRadius)
	return math.Vec2{
		X: clamp(level.Spawn.X+off.X, 0, float64(level.Width)),
		Y: clamp(level.Spawn.Y+off.Y, 0, float64(level.Height)),
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func (ws *WorldScene) nextLevel() string {
	levelEntry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return ""
	}
	return components.Level.Get(levelEntry).NextLevel
}

// swapLevel replaces the world with the next level, carrying the player's
// health over, and fades in. A level that fails to load keeps the player
// where they are.
func (ws *WorldScene) swapLevel(next string) {
	levelEntry, _ := components.Level.First(ws.ecs.World)
	levelData := components.Level.Get(levelEntry)
	levelData.NextLevel = ""

	level, err := ws.loader.Load(next)
	if err != nil {
		log.Error().Err(err).Str("level", next).Msg("Teleport failed")
		systems.BeginFadeIn(ws.ecs)
		return
	}

	health := cfg.Player.StartHealth
	if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
		health = components.Health.Get(playerEntry).Current
	}

	levelData.CurrentLevel.Dispose()
	ws.level = next
	ws.ecs = ws.build(level, health, nil)
	systems.BeginFadeIn(ws.ecs)
}
