package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer the sandbox uses.
const Default ecs.LayerID = 0

// PhysicsConfig contains physics-related configuration values.
// Speeds are in pixels per frame at 60 Hz.
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxSpeed     float64 // hard clamp on both axes
	Friction     float64 // ground friction per frame
	AirFriction  float64
}

// CrateConfig contains configuration for the stock damageable crate prop
type CrateConfig struct {
	Width  float64
	Height float64
	Mass   float64
	Health float64
}

// DeathConfig contains death sequence timings
type DeathConfig struct {
	Frames int // frames a dying prop stays in the world before removal
}

// NetConfig contains dedicated server defaults
type NetConfig struct {
	Port      uint
	TickRate  int // server ticks per second
	SimRate   int // fixed simulation steps per second (physics constants are tuned for this)
	ShootMax  float64
	AssetsDir string
	Level     string
}

// SandboxConfig contains the interactive client defaults
type SandboxConfig struct {
	ShotDamage float64 // damage of one click
	Name       string  // name sent when spectating
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TileSize int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Crate CrateConfig
var Death DeathConfig
var Net NetConfig
var Sandbox SandboxConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   368,
		TileSize: 16,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 16.0,
		MaxSpeed:     16.0,
		Friction:     0.35,
		AirFriction:  0.02,
	}

	Crate = CrateConfig{
		Width:  20,
		Height: 20,
		Mass:   40,
		Health: 30,
	}

	Death = DeathConfig{
		Frames: 20,
	}

	Sandbox = SandboxConfig{
		ShotDamage: 8,
		Name:       "spectator",
	}

	Net = NetConfig{
		Port:      7373,
		TickRate:  20,
		SimRate:   60,
		ShootMax:  50,
		AssetsDir: "assets",
		Level:     "yard",
	}
}
