package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/automoto/kaboom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBlastRadii outlines the force and damage reach of every live barrel
// when the sandbox radius overlay is on.
func DrawBlastRadii(ecs *ecs.ECS, screen *ebiten.Image) {
	if !showRadius(ecs) {
		return
	}

	tags.Barrel.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Barrel.Get(e)
		if b.Dead() {
			return
		}
		cx, cy := components.Object.Get(e).Center()
		drawRadii(screen, cx, cy, b.Props.ForceFalloffDistance, b.Props.DamageFalloffDistance)
	})

	// Replicas only know the model; they show the default reach.
	esync.NetworkEntityQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetProp) {
			return
		}
		p := netcomponents.NetProp.Get(e)
		if p.Dead || cfg.ModelID(p.Model) != cfg.ModelBarrel {
			return
		}
		d := cfg.Barrel.Defaults
		drawRadii(screen, p.X+p.W/2, p.Y+p.H/2, d.ForceFalloffDistance, d.DamageFalloffDistance)
	})
}

func drawRadii(screen *ebiten.Image, cx, cy, force, damage float64) {
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(force), 1, cfg.RadiusForce, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(damage), 1, cfg.RadiusDamage, true)
}

func showRadius(ecs *ecs.ECS) bool {
	sb := Settings(ecs)
	return sb != nil && sb.ShowRadius
}
