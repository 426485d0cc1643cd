package components

import "github.com/yohamta/donburi"

// NetInterpData stores interpolation state for smooth rendering of replicated
// props between server snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64 // 0 at the previous snapshot, 1 at the latest
	Initialized      bool
}

// Retarget starts a new interpolation segment from the currently drawn
// position towards x, y. The first call snaps.
func (n *NetInterpData) Retarget(curX, curY, x, y float64) {
	if !n.Initialized {
		n.PrevX, n.PrevY = x, y
		n.TargetX, n.TargetY = x, y
		n.T = 1
		n.Initialized = true
		return
	}
	n.PrevX, n.PrevY = curX, curY
	n.TargetX, n.TargetY = x, y
	n.T = 0
}

// Advance moves T forward by step and returns the interpolated position.
func (n *NetInterpData) Advance(step float64) (x, y float64) {
	n.T += step
	if n.T > 1 {
		n.T = 1
	}
	return n.PrevX + (n.TargetX-n.PrevX)*n.T, n.PrevY + (n.TargetY-n.PrevY)*n.T
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
