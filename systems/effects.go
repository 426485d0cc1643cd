package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances particles and screen shake.
func UpdateEffects(ecs *ecs.ECS) {
	updateParticles(ecs)
	updateScreenShake(ecs)
}

// updateParticles steps particle tweens by one simulation frame and removes
// finished particles.
func updateParticles(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.Net.SimRate)
	var done []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Tween == nil {
			done = append(done, e)
			return
		}
		radius, finished := p.Tween.Update(dt)
		p.Radius = float64(radius)
		if finished {
			done = append(done, e)
		}
	})

	for _, e := range done {
		ecs.World.Remove(e.Entity())
	}
}

// TriggerScreenShake starts or strengthens the screen shake, if the world
// has one.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, frames int) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if intensity > shake.Intensity || shake.Duration == 0 {
		shake.Intensity = intensity
	}
	if frames > shake.Duration {
		shake.Duration = frames
	}
	shake.Elapsed = 0
}

func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		shake.Intensity = 0
		return
	}
	shake.Duration--
	shake.Elapsed++
}
