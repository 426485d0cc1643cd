package components

import (
	cfg "github.com/automoto/kaboom/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is a short-lived visual effect. Radius follows Tween and the
// entity is removed once the tween finishes.
type ParticleData struct {
	Effect cfg.EffectID
	X, Y   float64
	Radius float64
	Tween  *gween.Tween
}

var Particle = donburi.NewComponentType[ParticleData]()

// ExplosionRecord is a detonation that presenters have not seen yet.
type ExplosionRecord struct {
	X, Y   float64
	Radius float64 // force falloff distance, for debug overlays
}

// EventsData queues world events for presenters (singleton component).
type EventsData struct {
	Explosions []ExplosionRecord
}

var Events = donburi.NewComponentType[EventsData]()

// ScreenShakeData tracks active screen shake (singleton, sandbox only)
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
