package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/automoto/kaboom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetExplodeAll switches every live barrel between same-tick and deferred
// detonation. Barrels already out of health go off right away so none is
// left waiting for a tick check that no longer applies to it.
func SetExplodeAll(ecs *ecs.ECS, on bool) {
	if !HasAuthority(ecs) {
		return
	}

	var due []*donburi.Entry
	tags.Barrel.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Barrel.Get(e)
		if b.Dead() {
			return
		}
		b.Props.ExplodeAllInSameTick = on
		if b.Health <= 0 {
			due = append(due, e)
		}
	})

	for _, e := range due {
		Detonate(ecs, e)
	}
}

// Settings returns the world's sandbox toggles, or nil when it is not drawn.
func Settings(ecs *ecs.ECS) *components.SandboxData {
	entry, ok := components.Sandbox.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Sandbox.Get(entry)
}
