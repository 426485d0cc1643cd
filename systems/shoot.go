package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShootAt deals untagged damage to every damageable prop covering the point
// x, y. It reports whether anything was hit.
func ShootAt(ecs *ecs.ECS, x, y, amount float64) bool {
	if !HasAuthority(ecs) || amount <= 0 {
		return false
	}

	var targets []*donburi.Entry
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Barrel) && !e.HasComponent(components.Health) {
			return
		}
		obj := components.Object.Get(e)
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			targets = append(targets, e)
		}
	})

	for _, e := range targets {
		DealDamage(ecs, e, components.DamageEventData{Amount: amount})
	}
	return len(targets) > 0
}
