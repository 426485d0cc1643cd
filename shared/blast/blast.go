// Package blast implements the explosion model of barrel props: the falloff
// curve and the single pass that pushes and damages everything around a
// detonation. It knows nothing about the ECS; callers adapt their objects to
// Target and hand in a Registry snapshot.
package blast

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Falloff attenuates maxValue over distance. It returns maxValue at 0, zero at
// maxDistance and negative values beyond it; callers apply only results > 0.
// The curve follows the square root of the distance, which is what barrel
// tuning is balanced against.
func Falloff(maxValue, maxDistance, distance float64) float64 {
	d := math.Sqrt(maxDistance) / maxValue
	return maxValue - math.Sqrt(distance)/d
}

// Params are the blast tunables of one detonation.
type Params struct {
	MaxForce              float64
	ForceFalloffDistance  float64
	MaxDamage             float64
	DamageFalloffDistance float64
}

// Target is anything a blast can reach. Implementations must be comparable,
// the pass skips the detonating target by equality.
type Target interface {
	// Position is the point distances are measured to.
	Position() dmath.Vec2
	// HasBody reports whether the target takes part in physics. Targets
	// without a body are ignored entirely.
	HasBody() bool
	ApplyImpulse(impulse dmath.Vec2)
	TakeDamage(amount float64, force dmath.Vec2)
}

// Registry provides the targets present when the blast goes off. Targets must
// return a snapshot so targets may be destroyed while the pass runs.
type Registry interface {
	Targets() []Target
}

// Hit records what the pass did to one target.
type Hit struct {
	Target    Target
	Direction dmath.Vec2
	Distance  float64
	Force     float64 // raw falloff value, may be <= 0
	Damage    float64 // raw falloff value, may be <= 0
}

// Pass pushes and damages every target in reg around origin, skipping nil
// targets, targets without a body and self. It returns one Hit per target it
// evaluated, whether or not anything was applied.
func Pass(origin dmath.Vec2, self Target, p Params, reg Registry) []Hit {
	if reg == nil {
		return nil
	}

	var hits []Hit
	for _, t := range reg.Targets() {
		if t == nil || t == self || !t.HasBody() {
			continue
		}

		pos := t.Position()
		delta := dmath.Vec2{X: pos.X - origin.X, Y: pos.Y - origin.Y}
		distance := math.Hypot(delta.X, delta.Y)
		dir := direction(delta, distance)

		force := Falloff(p.MaxForce, p.ForceFalloffDistance, distance)
		if force > 0 {
			t.ApplyImpulse(scale(dir, force))
		}

		dmg := Falloff(p.MaxDamage, p.DamageFalloffDistance, distance)
		if dmg > 0 {
			t.TakeDamage(dmg, scale(dir, math.Max(force, 0)))
		}

		hits = append(hits, Hit{
			Target:    t,
			Direction: dir,
			Distance:  distance,
			Force:     force,
			Damage:    dmg,
		})
	}
	return hits
}

// direction normalises delta. Targets sitting exactly on the origin get no
// push direction.
func direction(delta dmath.Vec2, length float64) dmath.Vec2 {
	if length == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: delta.X / length, Y: delta.Y / length}
}

func scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}
