package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect at a world position. Presenters drain the
// queue once per frame.
func PlaySFX(ecs *ecs.ECS, sound cfg.SoundID, x, y float64) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, components.SoundCue{Sound: sound, X: x, Y: y})
}

// DrainSFX returns and clears the queued sound effects.
func DrainSFX(ecs *ecs.ECS) []components.SoundCue {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	cues := audio.PendingSFX
	audio.PendingSFX = nil
	return cues
}

// DrainExplosions returns and clears the detonations recorded since the last
// call.
func DrainExplosions(ecs *ecs.ECS) []components.ExplosionRecord {
	entry, ok := components.Events.First(ecs.World)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	out := events.Explosions
	events.Explosions = nil
	return out
}
