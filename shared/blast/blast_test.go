package blast

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func TestFalloffEndpoints(t *testing.T) {
	cases := []struct {
		name        string
		max, maxDst float64
	}{
		{"barrel_force", 5000, 3000},
		{"barrel_damage", 60, 160},
		{"tiny", 0.5, 2},
		{"large", 1e6, 1e4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Falloff(c.max, c.maxDst, 0); math.Abs(got-c.max) > eps*c.max {
				t.Fatalf("Falloff at 0 = %v, want %v", got, c.max)
			}
			if got := Falloff(c.max, c.maxDst, c.maxDst); math.Abs(got) > eps*c.max {
				t.Fatalf("Falloff at max distance = %v, want 0", got)
			}
			for _, beyond := range []float64{c.maxDst * 1.01, c.maxDst * 2, c.maxDst * 100} {
				if got := Falloff(c.max, c.maxDst, beyond); got >= 0 {
					t.Fatalf("Falloff at %v = %v, want negative", beyond, got)
				}
			}
		})
	}
}

func TestFalloffSquareRootCurve(t *testing.T) {
	// At a quarter of the range the square root puts the value at one half.
	got := Falloff(5000, 3000, 750)
	if math.Abs(got-2500) > 1e-6 {
		t.Fatalf("Falloff(5000, 3000, 750) = %v, want 2500", got)
	}
	if got := Falloff(5000, 3000, 4000); got >= 0 {
		t.Fatalf("Falloff beyond range = %v, want negative", got)
	}

	// Monotonically decreasing.
	prev := math.Inf(1)
	for d := 0.0; d <= 3000; d += 150 {
		v := Falloff(5000, 3000, d)
		if v >= prev {
			t.Fatalf("Falloff not decreasing at %v: %v >= %v", d, v, prev)
		}
		prev = v
	}
}

type fakeTarget struct {
	pos     dmath.Vec2
	body    bool
	impulse dmath.Vec2
	pushes  int
	damage  float64
	force   dmath.Vec2
	hits    int
}

func (f *fakeTarget) Position() dmath.Vec2 { return f.pos }
func (f *fakeTarget) HasBody() bool        { return f.body }
func (f *fakeTarget) ApplyImpulse(i dmath.Vec2) {
	f.impulse.X += i.X
	f.impulse.Y += i.Y
	f.pushes++
}
func (f *fakeTarget) TakeDamage(amount float64, force dmath.Vec2) {
	f.damage += amount
	f.force = force
	f.hits++
}

type fakeRegistry []Target

func (r fakeRegistry) Targets() []Target { return append([]Target(nil), r...) }

func TestPassAppliesForceAndDamage(t *testing.T) {
	p := Params{MaxForce: 5000, ForceFalloffDistance: 3000, MaxDamage: 5000, DamageFalloffDistance: 3000}
	self := &fakeTarget{pos: dmath.Vec2{X: 0, Y: 0}, body: true}
	near := &fakeTarget{pos: dmath.Vec2{X: 750, Y: 0}, body: true}
	edge := &fakeTarget{pos: dmath.Vec2{X: 0, Y: -3000}, body: true}
	far := &fakeTarget{pos: dmath.Vec2{X: 4000, Y: 0}, body: true}
	ghost := &fakeTarget{pos: dmath.Vec2{X: 10, Y: 0}, body: false}

	hits := Pass(dmath.Vec2{}, self, p, fakeRegistry{self, nil, near, edge, far, ghost})

	if len(hits) != 3 {
		t.Fatalf("expected 3 evaluated targets, got %d", len(hits))
	}
	if self.pushes != 0 || self.hits != 0 {
		t.Fatalf("blast touched its own barrel")
	}
	if ghost.pushes != 0 || ghost.hits != 0 {
		t.Fatalf("blast touched a target without a body")
	}

	if near.pushes != 1 {
		t.Fatalf("near target pushed %d times", near.pushes)
	}
	if math.Abs(near.impulse.X-2500) > 1e-6 || near.impulse.Y != 0 {
		t.Fatalf("near impulse = %+v, want (2500, 0)", near.impulse)
	}
	if math.Abs(near.damage-2500) > 1e-6 {
		t.Fatalf("near damage = %v, want 2500", near.damage)
	}
	if math.Abs(near.force.X-2500) > 1e-6 {
		t.Fatalf("damage force = %+v, want the applied impulse", near.force)
	}

	// The edge of the range computes zero: nothing applied.
	if edge.pushes != 0 || edge.hits != 0 {
		t.Fatalf("edge target affected: pushes=%d hits=%d", edge.pushes, edge.hits)
	}
	if far.pushes != 0 || far.hits != 0 {
		t.Fatalf("far target affected: pushes=%d hits=%d", far.pushes, far.hits)
	}
	for _, h := range hits {
		if h.Target == Target(far) && h.Force >= 0 {
			t.Fatalf("far force should be negative, got %v", h.Force)
		}
	}
}

func TestPassDamageForceNeverPulls(t *testing.T) {
	// Damage reaches further than force: the damage force must not point inwards.
	p := Params{MaxForce: 100, ForceFalloffDistance: 100, MaxDamage: 100, DamageFalloffDistance: 400}
	target := &fakeTarget{pos: dmath.Vec2{X: 200}, body: true}

	Pass(dmath.Vec2{}, nil, p, fakeRegistry{target})

	if target.pushes != 0 {
		t.Fatalf("negative force applied")
	}
	if target.hits != 1 {
		t.Fatalf("expected damage beyond force range")
	}
	if target.force.X != 0 || target.force.Y != 0 {
		t.Fatalf("damage force = %+v, want zero", target.force)
	}
}

func TestPassTargetAtOrigin(t *testing.T) {
	p := Params{MaxForce: 100, ForceFalloffDistance: 100, MaxDamage: 10, DamageFalloffDistance: 100}
	target := &fakeTarget{body: true}

	Pass(dmath.Vec2{}, nil, p, fakeRegistry{target})

	if target.impulse.X != 0 || target.impulse.Y != 0 {
		t.Fatalf("target at origin got impulse %+v", target.impulse)
	}
	if target.damage != 10 {
		t.Fatalf("target at origin damage = %v, want full 10", target.damage)
	}
}

func TestPassNilRegistry(t *testing.T) {
	if hits := Pass(dmath.Vec2{}, nil, Params{}, nil); hits != nil {
		t.Fatalf("expected no hits, got %v", hits)
	}
}
