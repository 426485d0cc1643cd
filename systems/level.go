package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/leveldata"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReloadLevel removes every prop, particle and the collision space, then
// builds data again with base tuning. World state singletons survive, contact
// memory is cleared.
func ReloadLevel(ecs *ecs.ECS, data *leveldata.LevelData, base cfg.BarrelProps) error {
	var stale []*donburi.Entry
	components.Object.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Particle.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Space.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	for _, e := range stale {
		if e.Valid() {
			ecs.World.Remove(e.Entity())
		}
	}

	if contacts := contactMemory(ecs); contacts != nil {
		contacts.Touching = make(map[components.ContactPair]struct{})
	}
	DrainSFX(ecs)
	DrainExplosions(ecs)

	return factory.BuildLevel(ecs, data, base)
}
