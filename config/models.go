package config

import "image/color"

// ModelID names the visual representation of a prop.
type ModelID string

const (
	ModelBarrel       ModelID = "barrel"
	ModelBarrelBottom ModelID = "barrel_bottom"
	ModelBarrelTop    ModelID = "barrel_top"
	ModelCrate        ModelID = "crate"
	ModelPlatform     ModelID = "platform"
)

// EffectID names a particle effect.
type EffectID int

const (
	EffectNone EffectID = iota
	EffectExplosion
)

// ExplosionConfig controls the explosion particle
type ExplosionConfig struct {
	StartRadius float64
	EndRadius   float64
	Duration    float64 // seconds
	ShakeFrames int
	ShakeAmount float64
}

var Explosion ExplosionConfig

// ModelColors is the flat colour each model is drawn with in the sandbox.
var ModelColors = map[ModelID]color.RGBA{
	ModelBarrel:       {R: 200, G: 40, B: 30, A: 255},
	ModelBarrelBottom: {R: 90, G: 30, B: 25, A: 255},
	ModelBarrelTop:    {R: 120, G: 40, B: 30, A: 255},
	ModelCrate:        {R: 170, G: 120, B: 60, A: 255},
	ModelPlatform:     {R: 70, G: 70, B: 80, A: 255},
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 200}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Sky          = color.RGBA{R: 24, G: 26, B: 36, A: 255}
	RadiusForce  = color.RGBA{R: 80, G: 160, B: 255, A: 60}
	RadiusDamage = color.RGBA{R: 255, G: 60, B: 60, A: 60}
)

func init() {
	Explosion = ExplosionConfig{
		StartRadius: 6,
		EndRadius:   48,
		Duration:    0.35,
		ShakeFrames: 12,
		ShakeAmount: 4,
	}
}
