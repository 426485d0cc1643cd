package systems

import (
	"math"
	"testing"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/systems/factory"
)

func TestDamageBarrelByTag(t *testing.T) {
	cases := []struct {
		name   string
		tag    components.DamageTag
		amount float64
		want   float64
	}{
		{"impact_counts_half", components.DamagePhysicalImpact, 10, 15},
		{"blast_full", components.DamageBlast, 4, 16},
		{"untagged_full", components.DamageNone, 3, 17},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, true)
			b := factory.CreateBarrel(w, 100, 100, testProps())

			DamageBarrel(w, b, components.DamageEventData{Amount: c.amount, Tag: c.tag})

			if got := barrelState(b).Health; got != c.want {
				t.Fatalf("health = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDeferredDetonationWaitsForNextTick(t *testing.T) {
	w := newTestWorld(t, true)
	b := factory.CreateBarrel(w, 100, 100, testProps())

	for i, want := range []float64{12, 4, -4} {
		DamageBarrel(w, b, components.DamageEventData{Amount: 8})
		if got := barrelState(b).Health; got != want {
			t.Fatalf("hit %d: health = %v, want %v", i, got, want)
		}
	}
	if barrelState(b).Dead() {
		t.Fatalf("barrel exploded inside the damage call")
	}

	UpdateBarrels(w)

	if !barrelState(b).Dead() {
		t.Fatalf("barrel should explode on the next tick")
	}
	if barrelState(b).Health != 0 {
		t.Fatalf("dead barrel health = %v, want 0", barrelState(b).Health)
	}

	UpdateBarrels(w)
	if n := countModel(w, cfg.ModelBarrelTop); n != 1 {
		t.Fatalf("expected one top piece, got %d", n)
	}
}

func TestExplodeAllInSameTick(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	props.ExplodeAllInSameTick = true
	b := factory.CreateBarrel(w, 100, 100, props)

	DamageBarrel(w, b, components.DamageEventData{Amount: 25})

	if !barrelState(b).Dead() {
		t.Fatalf("barrel should explode inside the damage call")
	}

	// Zero-health barrels in this mode are never picked up by the tick.
	other := factory.CreateBarrel(w, 400, 100, props)
	barrelState(other).Health = 0
	UpdateBarrels(w)
	if barrelState(other).Dead() {
		t.Fatalf("tick detonated a same-tick barrel")
	}
}

func TestDetonateIsIdempotent(t *testing.T) {
	w := newTestWorld(t, true)
	b := factory.CreateBarrel(w, 100, 100, testProps())

	Detonate(w, b)
	Detonate(w, b)
	DamageBarrel(w, b, components.DamageEventData{Amount: 100})
	UpdateBarrels(w)

	if n := countModel(w, cfg.ModelBarrelTop); n != 1 {
		t.Fatalf("expected exactly one top piece, got %d", n)
	}
	if n := countSounds(DrainSFX(w), cfg.SoundExplosion); n != 1 {
		t.Fatalf("expected one explosion sound, got %d", n)
	}
	if n := len(DrainExplosions(w)); n != 1 {
		t.Fatalf("expected one explosion record, got %d", n)
	}
	if barrelState(b).Health != 0 {
		t.Fatalf("dead barrel took damage: %v", barrelState(b).Health)
	}
}

func TestCollapseLeavesBottomAndLaunchesTop(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	b := factory.CreateBarrel(w, 100, 100, props)
	bottomEdge := 100 + cfg.Barrel.Height

	Detonate(w, b)

	obj := components.Object.Get(b)
	if obj.H != cfg.Barrel.BottomHeight {
		t.Fatalf("bottom height = %v, want %v", obj.H, cfg.Barrel.BottomHeight)
	}
	if obj.Y+obj.H != bottomEdge {
		t.Fatalf("bottom piece moved its footing: %v, want %v", obj.Y+obj.H, bottomEdge)
	}
	if components.Model.Get(b).Key != cfg.ModelBarrelBottom {
		t.Fatalf("barrel model = %v", components.Model.Get(b).Key)
	}

	launched := false
	for e := range components.Model.Iter(w.World) {
		if components.Model.Get(e).Key != cfg.ModelBarrelTop {
			continue
		}
		top := components.Object.Get(e)
		if top.Y+top.H > obj.Y {
			t.Fatalf("top piece spawned inside the bottom piece")
		}
		want := -props.LaunchForce / cfg.Barrel.TopMass
		if got := components.Physics.Get(e).SpeedY; math.Abs(got-want) > 1e-9 {
			t.Fatalf("top piece speed = %v, want %v", got, want)
		}
		launched = true
	}
	if !launched {
		t.Fatalf("no top piece spawned")
	}
}

func TestReplicaWorldNeverMutatesBarrels(t *testing.T) {
	w := newTestWorld(t, false)
	b := factory.CreateBarrel(w, 100, 100, testProps())
	crate := factory.CreateCrate(w, 120, 100)

	DamageBarrel(w, b, components.DamageEventData{Amount: 50})
	CollideBarrel(w, b, crate, 40, 0)
	UpdateBarrels(w)
	Detonate(w, b)

	state := barrelState(b)
	if state.Dead() || state.Health != testProps().StartingHealth {
		t.Fatalf("replica changed barrel: %+v", state)
	}
	if crate.HasComponent(components.DamageEvent) {
		t.Fatalf("replica queued damage")
	}
	if n := countModel(w, cfg.ModelBarrelTop); n != 0 {
		t.Fatalf("replica spawned wreckage")
	}
}

func TestCollideBarrelThresholds(t *testing.T) {
	cases := []struct {
		name          string
		speed         float64
		partnerDamage bool
		selfLethal    bool
	}{
		{"gentle", 5, false, false},
		{"damaging", 10, true, false},
		{"detonating", 20, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, true)
			props := testProps()
			b := factory.CreateBarrel(w, 100, 100, props)
			crate := factory.CreateCrate(w, 120, 100)

			CollideBarrel(w, b, crate, c.speed, 0)

			hasEvent := crate.HasComponent(components.DamageEvent)
			if hasEvent != c.partnerDamage {
				t.Fatalf("partner damaged = %v, want %v", hasEvent, c.partnerDamage)
			}
			if hasEvent {
				ev := components.DamageEvent.Get(crate)
				if ev.Tag != components.DamagePhysicalImpact {
					t.Fatalf("partner damage tag = %v", ev.Tag)
				}
				if want := c.speed / props.ImpactDamageDivider; ev.Amount != want {
					t.Fatalf("partner damage = %v, want %v", ev.Amount, want)
				}
				if components.Physics.Get(crate).SpeedX <= 0 {
					t.Fatalf("partner not pushed along the impact")
				}
			}

			state := barrelState(b)
			if c.selfLethal {
				if state.Health > 0 {
					t.Fatalf("hard impact left health %v", state.Health)
				}
				if state.Dead() {
					t.Fatalf("deferred barrel exploded during the collision callback")
				}
			} else if state.Health != props.StartingHealth {
				t.Fatalf("barrel health changed to %v", state.Health)
			}
		})
	}
}

func TestCollisionBetweenBarrelsIsHalved(t *testing.T) {
	w := newTestWorld(t, true)
	a := factory.CreateBarrel(w, 100, 100, testProps())
	b := factory.CreateBarrel(w, 120, 100, testProps())

	CollideBarrel(w, a, b, 10, 0)

	// 10 / 0.5 = 20 impact damage, halved on the receiving barrel.
	if got := barrelState(b).Health; got != 10 {
		t.Fatalf("partner barrel health = %v, want 10", got)
	}
}

func TestCollideBarrelIgnoresSelfAndDead(t *testing.T) {
	w := newTestWorld(t, true)
	b := factory.CreateBarrel(w, 100, 100, testProps())

	CollideBarrel(w, b, b, 50, 0)
	CollideBarrel(w, b, nil, 50, 0)
	if barrelState(b).Health != testProps().StartingHealth {
		t.Fatalf("self or nil collision damaged the barrel")
	}

	Detonate(w, b)
	crate := factory.CreateCrate(w, 130, 100)
	CollideBarrel(w, b, crate, 50, 0)
	if crate.HasComponent(components.DamageEvent) {
		t.Fatalf("dead barrel dealt impact damage")
	}
}

func TestChainReactionAdvancesOneLinkPerTick(t *testing.T) {
	w := newTestWorld(t, true)
	a := factory.CreateBarrel(w, 100, 100, testProps())
	b := factory.CreateBarrel(w, 150, 100, testProps())
	c := factory.CreateBarrel(w, 210, 100, testProps())

	DamageBarrel(w, a, components.DamageEventData{Amount: 25})

	steps := []struct{ a, b, c bool }{
		{true, false, false},
		{true, true, false},
		{true, true, true},
	}
	for i, want := range steps {
		UpdateBarrels(w)
		got := [3]bool{barrelState(a).Dead(), barrelState(b).Dead(), barrelState(c).Dead()}
		if got != [3]bool{want.a, want.b, want.c} {
			t.Fatalf("tick %d: dead = %v, want %v", i+1, got, want)
		}
	}
}

func TestChainReactionSameTick(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	props.ExplodeAllInSameTick = true
	a := factory.CreateBarrel(w, 100, 100, props)
	b := factory.CreateBarrel(w, 150, 100, props)
	c := factory.CreateBarrel(w, 210, 100, props)

	DamageBarrel(w, a, components.DamageEventData{Amount: 25})

	for i, e := range []*components.BarrelData{barrelState(a), barrelState(b), barrelState(c)} {
		if !e.Dead() {
			t.Fatalf("barrel %d survived a same-tick chain", i)
		}
	}
	if n := countModel(w, cfg.ModelBarrelTop); n != 3 {
		t.Fatalf("expected 3 top pieces, got %d", n)
	}
}
