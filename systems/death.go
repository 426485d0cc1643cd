package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death timers and removes finished entities from
// the space and the world.
func UpdateDeaths(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		RemoveEntity(ecs, e)
	}
}

// RemoveEntity takes e out of the collision space and the world.
func RemoveEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
