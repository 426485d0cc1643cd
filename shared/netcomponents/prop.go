package netcomponents

import "github.com/yohamta/donburi"

// NetPropData is the replicated state of one prop: barrels, wreckage and
// crates alike.
type NetPropData struct {
	X, Y   float64
	W, H   float64
	Model  string
	Health float64
	Dead   bool
}

var NetProp = donburi.NewComponentType[NetPropData]()

// LerpNetProp interpolates position; everything else snaps to the newer state.
func LerpNetProp(from, to NetPropData, t float64) *NetPropData {
	return &NetPropData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		W:      to.W,
		H:      to.H,
		Model:  to.Model,
		Health: to.Health,
		Dead:   to.Dead,
	}
}
