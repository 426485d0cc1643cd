package factory

import (
	"github.com/automoto/kaboom/archetypes"
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion creates the explosion particle centred at x, y and records
// the detonation for presenters. reach is the blast's force falloff distance.
func SpawnExplosion(ecs *ecs.ECS, x, y, reach float64) *donburi.Entry {
	fx := archetypes.Particle.Spawn(ecs)

	ex := cfg.Explosion
	components.Particle.SetValue(fx, components.ParticleData{
		Effect: cfg.EffectExplosion,
		X:      x,
		Y:      y,
		Radius: ex.StartRadius,
		Tween:  gween.New(float32(ex.StartRadius), float32(ex.EndRadius), float32(ex.Duration), ease.OutCubic),
	})

	if entry, ok := components.Events.First(ecs.World); ok {
		events := components.Events.Get(entry)
		events.Explosions = append(events.Explosions, components.ExplosionRecord{X: x, Y: y, Radius: reach})
	}

	return fx
}

// CreatePresenter creates the singleton holding sandbox toggles and screen
// shake. Only worlds that are drawn have one.
func CreatePresenter(ecs *ecs.ECS, settings components.SandboxData) *donburi.Entry {
	p := archetypes.Presenter.Spawn(ecs)
	components.Sandbox.SetValue(p, settings)
	return p
}
