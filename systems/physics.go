package systems

import (
	"math"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and friction for every body.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.HasBody() {
			return
		}

		friction := cfg.Physics.AirFriction
		if physics.OnGround != nil {
			friction = physics.Friction
		}
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}

		physics.SpeedX = clamp(physics.SpeedX, -physics.MaxSpeed, physics.MaxSpeed)

		physics.SpeedY += physics.Gravity
		physics.SpeedY = math.Max(physics.SpeedY, -physics.MaxSpeed)
		physics.SpeedY = math.Min(physics.SpeedY, cfg.Physics.MaxFallSpeed)
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
