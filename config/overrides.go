package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalid       = errors.New("invalid config value")
	ErrUnknownAction = errors.New("unknown input action")
)

// overrides is the YAML document accepted by LoadOverrides. Sections start
// from the current values so a document only lists what it changes.
type overrides struct {
	Game     Config                  `yaml:"game"`
	Player   PlayerConfig            `yaml:"player"`
	Melee    MeleeConfig             `yaml:"melee"`
	Camera   CameraConfig            `yaml:"camera"`
	HUD      HUDConfig               `yaml:"hud"`
	Fade     FadeConfig              `yaml:"fade"`
	Debug    DebugConfig             `yaml:"debug"`
	Bindings map[string][]ebiten.Key `yaml:"bindings"`
}

// ParseAction maps an action name such as "move_left" to its ActionID.
func ParseAction(name string) (ActionID, bool) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		if actionNames[id] == name {
			return id, true
		}
	}
	return ActionNone, false
}

// LoadOverrides merges a YAML document onto the current configuration.
// Nothing is applied when the document is invalid. An empty document is a
// no-op.
func LoadOverrides(r io.Reader) error {
	doc := overrides{
		Game:   *C,
		Player: Player,
		Melee:  Melee,
		Camera: Camera,
		HUD:    HUD,
		Fade:   Fade,
		Debug:  Debug,
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config overrides: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for id, b := range Input.Bindings {
		bindings[id] = b
	}
	for name, keys := range doc.Bindings {
		id, ok := ParseAction(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		b := bindings[id]
		b.Keys = keys
		bindings[id] = b
	}

	game := doc.Game
	C = &game
	Player = doc.Player
	Melee = doc.Melee
	Camera = doc.Camera
	HUD = doc.HUD
	Fade = doc.Fade
	Debug = doc.Debug
	Input.Bindings = bindings
	return nil
}

// LoadOverridesFile reads overrides from path.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config overrides: %w", err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Reset restores every section to its default.
func Reset() {
	setDefaults()
	Input = defaultInput()
}

func (o *overrides) validate() error {
	switch {
	case o.Game.Width <= 0 || o.Game.Height <= 0:
		return fmt.Errorf("%w: game size %dx%d", ErrInvalid, o.Game.Width, o.Game.Height)
	case o.Game.WindowScale <= 0:
		return fmt.Errorf("%w: window_scale %d", ErrInvalid, o.Game.WindowScale)
	case o.Player.Speed <= 0 || o.Player.MaxSpeed < o.Player.Speed:
		return fmt.Errorf("%w: player speed %v..%v", ErrInvalid, o.Player.Speed, o.Player.MaxSpeed)
	case o.Player.RampFrames <= 0:
		return fmt.Errorf("%w: player ramp_frames %d", ErrInvalid, o.Player.RampFrames)
	case o.Player.StartHealth < 1 || o.Player.StartHealth > o.Player.MaxHealth:
		return fmt.Errorf("%w: player health %d/%d", ErrInvalid, o.Player.StartHealth, o.Player.MaxHealth)
	case o.Player.RegenFrames <= 0:
		return fmt.Errorf("%w: player regen_frames %d", ErrInvalid, o.Player.RegenFrames)
	case o.Melee.MoveDelay <= 0 || o.Melee.AttackDelay <= 0 || o.Melee.AttackDuration <= 0:
		return fmt.Errorf("%w: melee timers must be positive", ErrInvalid)
	case o.Melee.Damage < 0:
		return fmt.Errorf("%w: melee damage %d", ErrInvalid, o.Melee.Damage)
	case o.Camera.Speed < 0 || o.Camera.Acceleration < 0 || o.Camera.Radius < 0:
		return fmt.Errorf("%w: camera values must not be negative", ErrInvalid)
	case o.Fade.Frames <= 0:
		return fmt.Errorf("%w: fade frames %d", ErrInvalid, o.Fade.Frames)
	}
	return nil
}
