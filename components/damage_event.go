package components

import "github.com/yohamta/donburi"

// DamageTag classifies where damage came from.
type DamageTag int

const (
	DamageNone DamageTag = iota
	DamagePhysicalImpact
	DamageBlast
)

func (t DamageTag) String() string {
	switch t {
	case DamagePhysicalImpact:
		return "impact"
	case DamageBlast:
		return "blast"
	default:
		return "none"
	}
}

type DamageEventData struct {
	Amount   float64
	Tag      DamageTag
	Attacker *donburi.Entry // nil for environment
	ForceX   float64
	ForceY   float64
}

// Merge folds another event delivered in the same frame into d. Amounts and
// forces add up; the latest attacker and tag win.
func (d *DamageEventData) Merge(o DamageEventData) {
	d.Amount += o.Amount
	d.ForceX += o.ForceX
	d.ForceY += o.ForceY
	d.Tag = o.Tag
	if o.Attacker != nil {
		d.Attacker = o.Attacker
	}
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
