package systems

import (
	"image/color"
	"math"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	healthBarHeight = 2.0
	healthBarGap    = 3.0
)

// propView is what the renderers need from a prop, local or replicated.
type propView struct {
	X, Y, W, H float64
	Model      cfg.ModelID
	Health     float64
	MaxHealth  float64
	Dead       bool
}

// DrawProps renders every local prop with a collision object as a flat box
// in its model colour.
func DrawProps(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := ShakeOffset(ecs)
	components.Model.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		drawProp(screen, localView(e), ox, oy)
	})
}

// DrawNetProps renders replicated props. Static solids come from the local
// level copy and are drawn by DrawProps.
func DrawNetProps(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := ShakeOffset(ecs)
	esync.NetworkEntityQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetProp) {
			return
		}
		p := netcomponents.NetProp.Get(e)
		v := propView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			Model:  cfg.ModelID(p.Model),
			Health: p.Health,
			Dead:   p.Dead,
		}
		switch v.Model {
		case cfg.ModelBarrel:
			v.MaxHealth = cfg.Barrel.Defaults.StartingHealth
		case cfg.ModelCrate:
			v.MaxHealth = cfg.Crate.Health
		}
		drawProp(screen, v, ox, oy)
	})
}

func localView(e *donburi.Entry) propView {
	obj := components.Object.Get(e)
	v := propView{
		X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		Model: components.Model.Get(e).Key,
	}
	switch {
	case e.HasComponent(components.Barrel):
		b := components.Barrel.Get(e)
		v.Health = b.Health
		v.MaxHealth = b.Props.StartingHealth
		v.Dead = b.Dead()
	case e.HasComponent(components.Health):
		hp := components.Health.Get(e)
		v.Health = hp.Current
		v.MaxHealth = hp.Max
		v.Dead = e.HasComponent(components.Death)
	}
	return v
}

func drawProp(screen *ebiten.Image, v propView, ox, oy float64) {
	c, ok := cfg.ModelColors[v.Model]
	if !ok {
		c = cfg.White
	}
	x := float32(v.X + ox)
	y := float32(v.Y + oy)
	if v.Model == cfg.ModelPlatform {
		// Solids don't shake.
		x, y = float32(v.X), float32(v.Y)
	}
	vector.FillRect(screen, x, y, float32(v.W), float32(v.H), c, false)

	// Hoops on intact barrels.
	if v.Model == cfg.ModelBarrel {
		hoop := color.RGBA{R: 60, G: 20, B: 15, A: 255}
		vector.FillRect(screen, x, y+float32(v.H)*0.25, float32(v.W), 1, hoop, false)
		vector.FillRect(screen, x, y+float32(v.H)*0.75, float32(v.W), 1, hoop, false)
	}

	if v.Dead || v.MaxHealth <= 0 || v.Health >= v.MaxHealth {
		return
	}
	ratio := math.Max(0, v.Health) / v.MaxHealth
	barY := y - float32(healthBarGap+healthBarHeight)
	vector.FillRect(screen, x, barY, float32(v.W), healthBarHeight, color.RGBA{R: 60, A: 255}, false)
	vector.FillRect(screen, x, barY, float32(v.W*ratio), healthBarHeight, color.RGBA{R: 40, G: 220, B: 40, A: 255}, false)
}

// DrawParticles renders explosion particles as a filled core inside a ring.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := ShakeOffset(ecs)
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Effect != cfg.EffectExplosion {
			return
		}
		cx := float32(p.X + ox)
		cy := float32(p.Y + oy)
		r := float32(p.Radius)

		// Fade out as the blast grows.
		ex := cfg.Explosion
		fade := 1 - (p.Radius-ex.StartRadius)/(ex.EndRadius-ex.StartRadius)
		fade = math.Max(0, math.Min(1, fade))

		core := cfg.BrightYellow
		core.A = uint8(220 * fade)
		ring := cfg.Orange
		ring.A = uint8(float64(ring.A) * fade)

		vector.DrawFilledCircle(screen, cx, cy, r*0.6, core, true)
		vector.StrokeCircle(screen, cx, cy, r, 3, ring, true)
	})
}

// ShakeOffset is the draw offset of the current screen shake, zero when the
// world has no shake or it has run out.
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 || shake.Intensity <= 0 {
		return 0, 0
	}

	// Decay with the remaining share of the shake.
	progress := float64(shake.Duration) / float64(shake.Duration+shake.Elapsed)
	current := shake.Intensity * progress

	return math.Sin(float64(shake.Elapsed)*1.1) * current, math.Cos(float64(shake.Elapsed)*1.3) * current
}
