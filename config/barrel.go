package config

import (
	"fmt"
	"strconv"
)

// BarrelProps are the per-instance tunables of an exploding barrel. Level
// placements and tuning files override them by yaml key.
type BarrelProps struct {
	MaxForce              float64 `yaml:"maxForce"`
	ForceFalloffDistance  float64 `yaml:"forceFalloffDistance"`
	MaxDamage             float64 `yaml:"maxDamage"`
	DamageFalloffDistance float64 `yaml:"damageFalloffDistance"`

	MinImpactSpeedForDamage     float64 `yaml:"minImpactSpeedForDamage"`
	ImpactDamageDivider         float64 `yaml:"impactDamageDivider"`
	MinImpactSpeedForDetonation float64 `yaml:"minImpactSpeedForDetonation"`

	StartingHealth float64 `yaml:"startingHealth"`
	LaunchForce    float64 `yaml:"launchForce"`

	// ExplodeAllInSameTick detonates inside the damage call instead of on the
	// next tick. Chain reactions then launch neighbours straight up.
	ExplodeAllInSameTick bool `yaml:"explodeAllInSameTick"`
}

// BarrelConfig contains barrel body and wreckage configuration
type BarrelConfig struct {
	Defaults BarrelProps

	Width  float64
	Height float64
	Mass   float64

	BottomHeight float64 // collision height of the bottom wreckage
	TopHeight    float64
	TopMass      float64
	TopLift      float64 // gap between the bottom piece and the spawned top piece

	EffectLift float64 // upward offset of the explosion sound and particle

	ImpactForceDivider float64 // partner force = impact speed / divider
	LethalSelfDamage   float64 // added to StartingHealth for the self hit on hard impacts
}

var Barrel BarrelConfig

func init() {
	Barrel = BarrelConfig{
		Defaults: BarrelProps{
			MaxForce:                    900,
			ForceFalloffDistance:        220,
			MaxDamage:                   60,
			DamageFalloffDistance:       160,
			MinImpactSpeedForDamage:     8,
			ImpactDamageDivider:         0.5,
			MinImpactSpeedForDetonation: 15,
			StartingHealth:              20,
			LaunchForce:                 180,
			ExplodeAllInSameTick:        false,
		},

		Width:  16,
		Height: 24,
		Mass:   60,

		BottomHeight: 10,
		TopHeight:    8,
		TopMass:      12,
		TopLift:      2,

		EffectLift: 12,

		ImpactForceDivider: 10,
		LethalSelfDamage:   10,
	}
}

// Validate rejects values the falloff curve and impact formula cannot use.
func (p BarrelProps) Validate() error {
	positive := []struct {
		key string
		v   float64
	}{
		{"maxForce", p.MaxForce},
		{"forceFalloffDistance", p.ForceFalloffDistance},
		{"maxDamage", p.MaxDamage},
		{"damageFalloffDistance", p.DamageFalloffDistance},
		{"impactDamageDivider", p.ImpactDamageDivider},
		{"startingHealth", p.StartingHealth},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.key, f.v)
		}
	}
	if p.MinImpactSpeedForDamage < 0 || p.MinImpactSpeedForDetonation < 0 {
		return fmt.Errorf("impact speed thresholds must not be negative")
	}
	return nil
}

// Apply sets a single property from its textual form, as stored in Tiled
// object properties.
func (p *BarrelProps) Apply(key, value string) error {
	def, ok := PropertyByKey(key)
	if !ok {
		return fmt.Errorf("unknown barrel property %q", key)
	}
	if def.Kind == KindBool {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("property %s: %w", key, err)
		}
		*def.boolField(p) = b
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("property %s: %w", key, err)
	}
	*def.floatField(p) = f
	return nil
}
