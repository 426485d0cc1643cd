package systems

import (
	"fmt"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/fonts"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/automoto/kaboom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 6

// PropCounts is the number of live and spent barrels and of remaining crates.
type PropCounts struct {
	Live, Spent, Crates int
}

// CountProps tallies local props and, on replicas, replicated ones.
func CountProps(ecs *ecs.ECS) PropCounts {
	var c PropCounts
	tags.Barrel.Each(ecs.World, func(e *donburi.Entry) {
		if components.Barrel.Get(e).Dead() {
			c.Spent++
		} else {
			c.Live++
		}
	})
	tags.Crate.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			c.Crates++
		}
	})

	esync.NetworkEntityQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetProp) {
			return
		}
		p := netcomponents.NetProp.Get(e)
		switch cfg.ModelID(p.Model) {
		case cfg.ModelBarrel:
			c.Live++
		case cfg.ModelBarrelBottom:
			c.Spent++
		case cfg.ModelCrate:
			if !p.Dead {
				c.Crates++
			}
		}
	})
	return c
}

// DrawHUD prints prop counts and the sandbox status line in the bottom-left
// corner of the world view.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()
	height := screen.Bounds().Dy()

	c := CountProps(ecs)
	line := fmt.Sprintf("barrels %d  spent %d  crates %d", c.Live, c.Spent, c.Crates)
	text.Draw(screen, line, face, hudMargin, height-hudMargin-12, cfg.White)

	sb := Settings(ecs)
	if sb == nil {
		return
	}
	mode := "deferred"
	if sb.ExplodeAll {
		mode = "same tick"
	}
	hint := fmt.Sprintf("chain: %s   LMB shoot  RMB barrel  T chain  D radii  R reset  M mute", mode)
	if !HasAuthority(ecs) {
		hint = "LMB shoot  RMB barrel  D radii  M mute"
	}
	text.Draw(screen, hint, small, hudMargin, height-hudMargin, cfg.BrightYellow)
}
