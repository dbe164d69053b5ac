package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every system and renderer runs on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	WindowScale  int     `yaml:"window_scale"`
	StartLevel   string  `yaml:"start_level"`
	AppName      string  `yaml:"app_name"`
	SpawnRadius  float64 `yaml:"spawn_radius"` // Random melee spawn radius around the player spawn
	MeleePerRoom int     `yaml:"melee_per_room"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed      float64 `yaml:"speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	RampFrames int     `yaml:"ramp_frames"` // Frames to reach MaxSpeed

	// Health
	StartHealth int `yaml:"start_health"`
	MaxHealth   int `yaml:"max_health"`
	RegenFrames int `yaml:"regen_frames"`

	// Dimensions
	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// MeleeConfig contains melee enemy configuration
type MeleeConfig struct {
	WanderRadius   float64 `yaml:"wander_radius"`
	TargetRange    float64 `yaml:"target_range"`
	AttackRangeSq  float64 `yaml:"attack_range_sq"` // Squared distance
	MoveDelay      int     `yaml:"move_delay"`
	AttackDelay    int     `yaml:"attack_delay"`
	AttackDuration int     `yaml:"attack_duration"`
	Damage         int     `yaml:"damage"`
	Health         int     `yaml:"health"`

	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	Speed        float64 `yaml:"speed"`        // Max pixels per frame
	Acceleration float64 `yaml:"acceleration"` // Pixels per frame added each frame
	Radius       float64 `yaml:"radius"`       // Dead zone around the centre
	Leash        float64 `yaml:"leash"`        // Max distance the target may get ahead
}

// HUDConfig contains health bar configuration
type HUDConfig struct {
	BarLength   float64    `yaml:"bar_length"`
	BarHeight   float64    `yaml:"bar_height"`
	BarOffsetY  float64    `yaml:"bar_offset_y"` // Pixels above the sprite
	PixelsPerHP float64    `yaml:"pixels_per_hp"`
	BgColor     color.RGBA `yaml:"-"`
	FgColor     color.RGBA `yaml:"-"`
}

// FadeConfig contains teleport fade configuration
type FadeConfig struct {
	Frames int        `yaml:"frames"` // Frames for each half of the fade
	Color  color.RGBA `yaml:"-"`
}

// DebugConfig contains debug options
type DebugConfig struct {
	Enabled       bool `yaml:"enabled"`
	ShowColliders bool `yaml:"show_colliders"`
	WatchConfig   bool `yaml:"watch_config"` // Reload the override file when it changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Melee MeleeConfig
var Camera CameraConfig
var HUD HUDConfig
var Fade FadeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:        320,
		Height:       180,
		WindowScale:  4,
		StartLevel:   "levels/start_room.json",
		AppName:      "tilecrawl",
		SpawnRadius:  200,
		MeleePerRoom: 1,
	}

	Player = PlayerConfig{
		Speed:      1,
		MaxSpeed:   2,
		RampFrames: 90,

		StartHealth: 1,
		MaxHealth:   20,
		RegenFrames: 60,

		FrameWidth:      16,
		FrameHeight:     16,
		CollisionWidth:  10,
		CollisionHeight: 6,
	}

	Melee = MeleeConfig{
		WanderRadius:   40,
		TargetRange:    60,
		AttackRangeSq:  4,
		MoveDelay:      120,
		AttackDelay:    240,
		AttackDuration: 90,
		Damage:         1,
		Health:         5,

		FrameWidth:      16,
		FrameHeight:     16,
		CollisionWidth:  10,
		CollisionHeight: 6,
	}

	Camera = CameraConfig{
		Speed:        1.5,
		Acceleration: 0.01,
		Radius:       40,
		Leash:        120,
	}

	HUD = HUDConfig{
		BarLength:   75,
		BarHeight:   10,
		BarOffsetY:  10,
		PixelsPerHP: 5,
		BgColor:     Grey,
		FgColor:     Red,
	}

	Fade = FadeConfig{
		Frames: 30,
		Color:  Black,
	}

	Debug = DebugConfig{}
}
