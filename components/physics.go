package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Mass     float64 // <= 0 means static: impulses are ignored
	Gravity  float64
	Friction float64
	MaxSpeed float64
	OnGround *resolv.Object
}

// HasBody reports whether the entity takes part in rigid body physics.
func (p *PhysicsData) HasBody() bool {
	return p != nil && p.Mass > 0
}

// ApplyImpulse changes velocity by impulse / mass.
func (p *PhysicsData) ApplyImpulse(x, y float64) {
	if !p.HasBody() {
		return
	}
	p.SpeedX += x / p.Mass
	p.SpeedY += y / p.Mass
}

var Physics = donburi.NewComponentType[PhysicsData]()
