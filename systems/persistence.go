package systems

import (
	"encoding/json"

	"github.com/automoto/tilecrawl/components"
	cfg "github.com/automoto/tilecrawl/config"
	"github.com/automoto/tilecrawl/tags"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

const sessionKey = "session"

// SavedSession is the save slot stored on disk.
type SavedSession struct {
	Level  string  `json:"level"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for the save slot
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSession returns the saved session, or nil when there is none.
func LoadSession() (*SavedSession, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(sessionKey)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load session")
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s SavedSession
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn().Err(err).Msg("Could not parse saved session")
		return nil, err
	}
	return &s, nil
}

func SaveSession(s *SavedSession) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("Could not serialize session")
		return err
	}
	if err := gdataManager.SaveItem(sessionKey, data); err != nil {
		log.Warn().Err(err).Msg("Could not save session")
		return err
	}
	return nil
}

// ClearSession removes the saved session
func ClearSession() error {
	if gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(sessionKey, nil); err != nil {
		log.Warn().Err(err).Msg("Could not clear session")
		return err
	}
	return nil
}

// UpdateSession saves the current level, player position and health when
// the save action is pressed.
func UpdateSession(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionSave).JustPressed {
		return
	}

	s, ok := CaptureSession(ecs)
	if !ok {
		return
	}
	if err := SaveSession(s); err != nil {
		return
	}
	log.Info().
		Str("level", s.Level).
		Int("health", s.Health).
		Msg("Session saved")
}

// CaptureSession snapshots the live world into a SavedSession.
func CaptureSession(ecs *ecs.ECS) (*SavedSession, bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, false
	}
	if components.Player.Get(playerEntry).Dead {
		return nil, false
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return nil, false
	}

	feet := components.Object.Get(playerEntry).Feet()
	return &SavedSession{
		Level:  level.Name,
		X:      feet.X,
		Y:      feet.Y,
		Health: components.Health.Get(playerEntry).Current,
	}, true
}
