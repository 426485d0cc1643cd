package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem returns a system that slides replicated props from their
// previous snapshot position to the latest one over one server tick.
// tickRate reports the server's tick rate once known.
func NewNetInterpSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		step := interpStep(tickRate())
		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(netcomponents.NetProp) {
				return
			}
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized {
				return
			}
			prop := netcomponents.NetProp.Get(entry)
			prop.X, prop.Y = interp.Advance(step)
		})
	}
}

// interpStep is the fraction of a server tick that passes in one client frame.
func interpStep(tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = cfg.Net.TickRate
	}
	step := float64(tickRate) / float64(cfg.Net.SimRate)
	if step > 1 {
		return 1
	}
	return step
}

// ApplyNetProp stores a snapshot state on a replicated prop. Position is
// handed to the interpolator; everything else takes effect immediately.
func ApplyNetProp(entry *donburi.Entry, state netcomponents.NetPropData) {
	if !entry.HasComponent(netcomponents.NetProp) {
		entry.AddComponent(netcomponents.NetProp)
	}
	if !entry.HasComponent(components.NetInterp) {
		entry.AddComponent(components.NetInterp)
	}

	cur := netcomponents.NetProp.Get(entry)
	interp := components.NetInterp.Get(entry)
	interp.Retarget(cur.X, cur.Y, state.X, state.Y)
	state.X, state.Y = interp.Advance(0)

	netcomponents.NetProp.SetValue(entry, state)
}
