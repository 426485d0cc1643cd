package systems

import (
	"math"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/blast"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/automoto/kaboom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// DamageBarrel applies a damage event to a live barrel. Physical impacts only
// count for half. With ExplodeAllInSameTick the barrel goes off as soon as its
// health is gone, otherwise UpdateBarrels picks it up next tick.
func DamageBarrel(ecs *ecs.ECS, e *donburi.Entry, ev components.DamageEventData) {
	if !HasAuthority(ecs) || !isBarrel(e) {
		return
	}
	b := components.Barrel.Get(e)
	if b.Dead() {
		return
	}

	amount := ev.Amount
	if ev.Tag == components.DamagePhysicalImpact {
		amount /= 2
	}
	b.Health -= amount

	if b.Health <= 0 && b.Props.ExplodeAllInSameTick {
		Detonate(ecs, e)
	}
}

// UpdateBarrels detonates every live barrel whose health ran out before this
// tick. Barrels brought down by these explosions wait for the next tick, so
// chains advance one link per tick.
func UpdateBarrels(ecs *ecs.ECS) {
	if !HasAuthority(ecs) {
		return
	}

	var due []*donburi.Entry
	tags.Barrel.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Barrel.Get(e)
		if !b.Dead() && !b.Props.ExplodeAllInSameTick && b.Health <= 0 {
			due = append(due, e)
		}
	})

	for _, e := range due {
		Detonate(ecs, e)
	}
}

// CollideBarrel reacts to the start of a contact between a barrel and other.
// relX, relY is the barrel's velocity relative to its partner.
func CollideBarrel(ecs *ecs.ECS, e, other *donburi.Entry, relX, relY float64) {
	if !HasAuthority(ecs) || !isBarrel(e) || other == nil || !other.Valid() {
		return
	}
	if e.Entity() == other.Entity() {
		return
	}
	b := components.Barrel.Get(e)
	if b.Dead() {
		return
	}
	p := b.Props

	speed := math.Hypot(relX, relY)
	if speed > p.MinImpactSpeedForDamage {
		push := speed / cfg.Barrel.ImpactForceDivider
		fx, fy := relX/speed*push, relY/speed*push
		if other.HasComponent(components.Physics) {
			components.Physics.Get(other).ApplyImpulse(fx, fy)
		}
		cx, cy := components.Object.Get(e).Center()
		PlaySFX(ecs, cfg.SoundImpact, cx, cy)
		DealDamage(ecs, other, components.DamageEventData{
			Amount:   speed / p.ImpactDamageDivider,
			Tag:      components.DamagePhysicalImpact,
			Attacker: e,
			ForceX:   fx,
			ForceY:   fy,
		})
	}

	if speed > p.MinImpactSpeedForDetonation {
		DealDamage(ecs, e, components.DamageEventData{
			Amount: p.StartingHealth + cfg.Barrel.LethalSelfDamage,
			Tag:    components.DamageNone,
		})
	}
}

// Detonate blows a live barrel up: it marks it dead, pushes and damages
// everything in range, emits the explosion effect and sound, then collapses
// the barrel into wreckage. Calling it on a dead barrel does nothing.
func Detonate(ecs *ecs.ECS, e *donburi.Entry) {
	if !HasAuthority(ecs) || !isBarrel(e) {
		return
	}
	b := components.Barrel.Get(e)
	if b.Dead() {
		return
	}
	b.Life = components.LifeDead
	b.Health = 0
	p := b.Props

	cx, cy := components.Object.Get(e).Center()
	blast.Pass(dmath.Vec2{X: cx, Y: cy}, newEntryTarget(ecs, e, e), blast.Params{
		MaxForce:              p.MaxForce,
		ForceFalloffDistance:  p.ForceFalloffDistance,
		MaxDamage:             p.MaxDamage,
		DamageFalloffDistance: p.DamageFalloffDistance,
	}, snapshotTargets(ecs, e))

	fxY := cy - cfg.Barrel.EffectLift
	PlaySFX(ecs, cfg.SoundExplosion, cx, fxY)
	factory.SpawnExplosion(ecs, cx, fxY, p.ForceFalloffDistance)

	Collapse(ecs, e)
}

// Collapse turns a detonated barrel into wreckage. The barrel itself becomes
// the bottom piece, keeping its footing, and a loose top piece is launched
// upwards.
func Collapse(ecs *ecs.ECS, e *donburi.Entry) {
	if !isBarrel(e) {
		return
	}
	launch := components.Barrel.Get(e).Props.LaunchForce

	obj := components.Object.Get(e)
	bc := cfg.Barrel
	if obj.H > bc.BottomHeight {
		obj.Y += obj.H - bc.BottomHeight
		obj.H = bc.BottomHeight
		obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
		obj.Update()
	}
	components.Model.Get(e).Key = cfg.ModelBarrelBottom

	topY := obj.Y - bc.TopLift - bc.TopHeight
	top := factory.CreateWreckage(ecs, obj.X, topY, obj.W, bc.TopHeight, bc.TopMass, cfg.ModelBarrelTop)
	components.Physics.Get(top).ApplyImpulse(0, -launch)
}

func isBarrel(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Barrel)
}
