package systems

import (
	"testing"

	"github.com/automoto/kaboom/components"
	"github.com/automoto/kaboom/systems/factory"
)

func TestLandingContactFiresOnce(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	factory.CreatePlatform(w, 64, 200, 128, 16)
	b := factory.CreateBarrel(w, 100, 170, props)
	components.Physics.Get(b).SpeedY = 20

	UpdateCollisions(w)

	obj := components.Object.Get(b)
	if obj.Y+obj.H != 200 {
		t.Fatalf("barrel bottom at %v, want resting on 200", obj.Y+obj.H)
	}
	if components.Physics.Get(b).OnGround == nil {
		t.Fatalf("barrel not grounded")
	}
	want := props.StartingHealth - (props.StartingHealth + 10)
	if got := barrelState(b).Health; got != want {
		t.Fatalf("health after hard landing = %v, want %v", got, want)
	}

	// Resting on the platform is the same contact.
	for i := 0; i < 3; i++ {
		UpdateCollisions(w)
	}
	if got := barrelState(b).Health; got != want {
		t.Fatalf("contact fired again: health %v", got)
	}
	if barrelState(b).Dead() {
		t.Fatalf("barrel exploded inside the collision system")
	}

	UpdateBarrels(w)
	if !barrelState(b).Dead() {
		t.Fatalf("hard landing did not detonate on the next tick")
	}
}

func TestSoftLandingLeavesBarrelIntact(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	factory.CreatePlatform(w, 64, 200, 128, 16)
	b := factory.CreateBarrel(w, 100, 170, props)
	components.Physics.Get(b).SpeedY = 4

	for i := 0; i < 5; i++ {
		UpdatePhysics(w)
		UpdateCollisions(w)
	}

	if got := barrelState(b).Health; got != props.StartingHealth {
		t.Fatalf("soft landing damaged the barrel: %v", got)
	}
}

func TestBodiesStopAtWalls(t *testing.T) {
	w := newTestWorld(t, true)
	factory.CreatePlatform(w, 160, 96, 16, 64)
	crate := factory.CreateCrate(w, 130, 120)
	components.Physics.Get(crate).SpeedX = 20

	UpdateCollisions(w)

	obj := components.Object.Get(crate)
	if obj.X+obj.W != 160 {
		t.Fatalf("crate right edge at %v, want 160", obj.X+obj.W)
	}
	if components.Physics.Get(crate).SpeedX != 0 {
		t.Fatalf("horizontal speed not cancelled")
	}
}

func TestRollingBarrelHitsCrate(t *testing.T) {
	w := newTestWorld(t, true)
	props := testProps()
	b := factory.CreateBarrel(w, 100, 100, props)
	crate := factory.CreateCrate(w, 125, 102)
	components.Physics.Get(b).SpeedX = 12

	UpdateCollisions(w)

	if !crate.HasComponent(components.DamageEvent) {
		t.Fatalf("crate not damaged by the impact")
	}
	ev := components.DamageEvent.Get(crate)
	if ev.Tag != components.DamagePhysicalImpact || ev.Amount != 12/props.ImpactDamageDivider {
		t.Fatalf("impact event = %+v", *ev)
	}
}
