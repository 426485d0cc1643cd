package components

import (
	"github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
)

// LifeState is the binary alive/dead flag of a barrel.
type LifeState int

const (
	LifeAlive LifeState = iota
	LifeDead
)

func (s LifeState) String() string {
	if s == LifeDead {
		return "dead"
	}
	return "alive"
}

type BarrelData struct {
	Health float64
	Life   LifeState
	Props  config.BarrelProps
}

// Dead reports whether the barrel has already exploded. Dead is terminal.
func (b *BarrelData) Dead() bool {
	return b.Life == LifeDead
}

var Barrel = donburi.NewComponentType[BarrelData]()
