package main

import (
	"os"

	"github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/scenes"
	"github.com/automoto/tilecrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// configEnv names an optional YAML file with configuration overrides.
const configEnv = "TILECRAWL_CONFIG"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene   Scene
	watcher *config.Watcher
}

func NewGame(session *systems.SavedSession) *Game {
	return &Game{
		scene: scenes.NewWorldScene(config.C.StartLevel, session),
	}
}

func (g *Game) Update() error {
	g.reloadConfig()
	g.scene.Update()
	return nil
}

// reloadConfig applies the override file again after it changed on disk.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Changes:
		if err := config.LoadOverridesFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Config reload rejected")
			return
		}
		setLogLevel()
		log.Info().Str("path", path).Msg("Config reloaded")
	case err := <-g.watcher.Errors:
		log.Warn().Err(err).Msg("Config watcher error")
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func setLogLevel() {
	if config.Debug.Enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := os.Getenv(configEnv)
	if configPath != "" {
		if err := config.LoadOverridesFile(configPath); err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("Invalid config")
		}
	}
	setLogLevel()

	// Initialize persistence and load the saved session
	var session *systems.SavedSession
	if err := systems.InitPersistence(); err == nil {
		if s, err := systems.LoadSession(); err == nil {
			session = s
		}
	}

	game := NewGame(session)
	if configPath != "" && config.Debug.WatchConfig {
		w, err := config.Watch(configPath)
		if err != nil {
			log.Warn().Err(err).Msg("Could not watch config")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.AppName)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("Game exited")
	}
}
