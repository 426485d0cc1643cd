package systems

import (
	"math"

	"github.com/automoto/kaboom/components"
	"github.com/automoto/kaboom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type mover struct {
	physics *components.PhysicsData
	object  *resolv.Object
}

type contact struct {
	a, b *resolv.Object
}

// UpdateCollisions moves every body through the space, stopping it at solids
// and other bodies, and raises OnContact for pairs that started touching this
// frame. Relative velocities are taken from before the move.
func UpdateCollisions(ecs *ecs.ECS) {
	var movers []mover
	velocity := make(map[*resolv.Object][2]float64)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.HasBody() || !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		movers = append(movers, mover{physics: physics, object: obj})
		velocity[obj] = [2]float64{physics.SpeedX, physics.SpeedY}
	})

	contacts := contactMemory(ecs)
	touching := make(map[components.ContactPair]struct{})
	var started []contact

	for _, m := range movers {
		for _, other := range moveBody(m.physics, m.object) {
			pair := components.ContactPair{A: m.object, B: other}
			if _, ok := touching[pair]; ok {
				continue
			}
			touching[pair] = struct{}{}
			touching[components.ContactPair{A: other, B: m.object}] = struct{}{}
			if contacts != nil {
				if _, ok := contacts.Touching[pair]; ok {
					continue
				}
			}
			started = append(started, contact{a: m.object, b: other})
		}
	}

	if contacts != nil {
		contacts.Touching = touching
	}

	for _, c := range started {
		va, vb := velocity[c.a], velocity[c.b]
		ea, eb := entryOf(c.a), entryOf(c.b)
		OnContact(ecs, ea, eb, va[0]-vb[0], va[1]-vb[1])
		OnContact(ecs, eb, ea, vb[0]-va[0], vb[1]-va[1])
	}
}

// OnContact dispatches the start of a contact to whatever e is. relX, relY is
// e's velocity relative to other.
func OnContact(ecs *ecs.ECS, e, other *donburi.Entry, relX, relY float64) {
	if e == nil || other == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Barrel) {
		CollideBarrel(ecs, e, other, relX, relY)
	}
}

func contactMemory(ecs *ecs.ECS) *components.ContactsData {
	entry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Contacts.Get(entry)
}

func entryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || !e.Valid() {
		return nil
	}
	return e
}

// moveBody moves object by its velocity, one axis at a time, and returns the
// objects it ran into or rests on.
func moveBody(physics *components.PhysicsData, object *resolv.Object) []*resolv.Object {
	var touched []*resolv.Object

	if dx := physics.SpeedX; dx != 0 {
		target := object.X + dx
		for _, o := range candidates(object, dx, 0) {
			if !overlaps(object.Y, object.H, o.Y, o.H) || !overlaps(target, object.W, o.X, o.W) {
				continue
			}
			if dx > 0 {
				target = math.Min(target, o.X-object.W)
			} else {
				target = math.Max(target, o.X+o.W)
			}
			touched = append(touched, o)
		}
		if len(touched) > 0 {
			physics.SpeedX = 0
		}
		object.X = target
		object.Update()
	}

	physics.OnGround = nil
	dy := physics.SpeedY
	probe := dy
	if dy >= 0 {
		// Look one pixel further down so resting bodies keep their ground.
		probe++
	}
	target := object.Y + dy
	hitY := false
	for _, o := range candidates(object, 0, probe) {
		if !overlaps(object.X, object.W, o.X, o.W) || !overlaps(object.Y+probe, object.H, o.Y, o.H) {
			continue
		}
		if dy >= 0 {
			target = math.Min(target, o.Y-object.H)
			physics.OnGround = o
		} else {
			target = math.Max(target, o.Y+o.H)
		}
		touched = append(touched, o)
		hitY = true
	}
	if hitY {
		physics.SpeedY = 0
	}
	object.Y = target
	object.Update()

	return touched
}

func candidates(object *resolv.Object, dx, dy float64) []*resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid, tags.ResolvBody)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvBody) {
		if o != object {
			out = append(out, o)
		}
	}
	return out
}

// overlaps reports whether the open intervals [a, a+aw) and [b, b+bw) share
// any length.
func overlaps(a, aw, b, bw float64) bool {
	return a < b+bw && a+aw > b
}
