package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/automoto/kaboom/shared/blast"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// entryTarget exposes an entity with a collision object to a blast pass.
// It holds the entity id rather than the entry so targets compare by identity.
type entryTarget struct {
	ecs      *ecs.ECS
	entity   donburi.Entity
	attacker donburi.Entity
}

func newEntryTarget(ecs *ecs.ECS, e, attacker *donburi.Entry) entryTarget {
	return entryTarget{ecs: ecs, entity: e.Entity(), attacker: attacker.Entity()}
}

func (t entryTarget) entry() *donburi.Entry {
	if !t.ecs.World.Valid(t.entity) {
		return nil
	}
	return t.ecs.World.Entry(t.entity)
}

func (t entryTarget) Position() dmath.Vec2 {
	e := t.entry()
	if e == nil {
		return dmath.Vec2{}
	}
	x, y := components.Object.Get(e).Center()
	return dmath.Vec2{X: x, Y: y}
}

func (t entryTarget) HasBody() bool {
	e := t.entry()
	return e != nil && e.HasComponent(components.Physics) && components.Physics.Get(e).HasBody()
}

func (t entryTarget) ApplyImpulse(impulse dmath.Vec2) {
	if e := t.entry(); e != nil {
		components.Physics.Get(e).ApplyImpulse(impulse.X, impulse.Y)
	}
}

func (t entryTarget) TakeDamage(amount float64, force dmath.Vec2) {
	e := t.entry()
	if e == nil {
		return
	}
	DealDamage(t.ecs, e, components.DamageEventData{
		Amount:   amount,
		Tag:      components.DamageBlast,
		Attacker: t.attackerEntry(),
		ForceX:   force.X,
		ForceY:   force.Y,
	})
}

func (t entryTarget) attackerEntry() *donburi.Entry {
	if !t.ecs.World.Valid(t.attacker) {
		return nil
	}
	return t.ecs.World.Entry(t.attacker)
}

// targetList is a snapshot registry of blast targets.
type targetList []blast.Target

func (l targetList) Targets() []blast.Target { return l }

// snapshotTargets collects every entity with a collision object at the moment
// of the call.
func snapshotTargets(ecs *ecs.ECS, attacker *donburi.Entry) targetList {
	var out targetList
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, newEntryTarget(ecs, e, attacker))
	})
	return out
}
