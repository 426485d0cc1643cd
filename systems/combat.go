package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DealDamage delivers a damage event to target. Barrels take it immediately;
// other entities with Health get it queued for UpdateCombat, merged with any
// event already pending this frame. Anything else ignores damage.
func DealDamage(ecs *ecs.ECS, target *donburi.Entry, ev components.DamageEventData) {
	if !HasAuthority(ecs) || target == nil || !target.Valid() {
		return
	}

	switch {
	case target.HasComponent(components.Barrel):
		DamageBarrel(ecs, target, ev)
	case target.HasComponent(components.Health):
		if target.HasComponent(components.Death) {
			return
		}
		if target.HasComponent(components.DamageEvent) {
			components.DamageEvent.Get(target).Merge(ev)
			return
		}
		donburi.Add(target, components.DamageEvent, &ev)
	}
}

// UpdateCombat applies queued damage events to Health and starts the death
// sequence of anything brought to zero.
func UpdateCombat(ecs *ecs.ECS) {
	if !HasAuthority(ecs) {
		return
	}

	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		amount := dmg.Amount
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !e.HasComponent(components.Health) || e.HasComponent(components.Death) {
			continue
		}
		hp := components.Health.Get(e)
		hp.Current -= amount
		if hp.Current <= 0 {
			hp.Current = 0
			startDeathSequence(ecs, e)
		}
	}
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		cx, cy := components.Object.Get(e).Center()
		PlaySFX(ecs, cfg.SoundCrateBreak, cx, cy)
	}
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Death.Frames})
}
