package factory

import (
	"github.com/automoto/kaboom/archetypes"
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBarrel spawns an exploding barrel with its top-left corner at x, y.
// The barrel starts alive at full health with its body registered in the
// space.
func CreateBarrel(ecs *ecs.ECS, x, y float64, props cfg.BarrelProps) *donburi.Entry {
	barrel := archetypes.Barrel.Spawn(ecs)

	addToSpace(ecs, barrel, newBox(x, y, cfg.Barrel.Width, cfg.Barrel.Height, tags.ResolvBody))

	components.Physics.SetValue(barrel, bodyPhysics(cfg.Barrel.Mass))
	components.Model.SetValue(barrel, components.ModelData{Key: cfg.ModelBarrel})
	components.Barrel.SetValue(barrel, components.BarrelData{
		Health: props.StartingHealth,
		Life:   components.LifeAlive,
		Props:  props,
	})

	return barrel
}

// CreateWreckage spawns a loose physics piece. Wreckage is not tracked by
// anything once spawned.
func CreateWreckage(ecs *ecs.ECS, x, y, w, h, mass float64, model cfg.ModelID) *donburi.Entry {
	piece := archetypes.Wreckage.Spawn(ecs)

	addToSpace(ecs, piece, newBox(x, y, w, h, tags.ResolvBody))

	components.Physics.SetValue(piece, bodyPhysics(mass))
	components.Model.SetValue(piece, components.ModelData{Key: model})

	return piece
}

// CreateCrate spawns a plain damageable box.
func CreateCrate(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)

	addToSpace(ecs, crate, newBox(x, y, cfg.Crate.Width, cfg.Crate.Height, tags.ResolvBody))

	components.Physics.SetValue(crate, bodyPhysics(cfg.Crate.Mass))
	components.Model.SetValue(crate, components.ModelData{Key: cfg.ModelCrate})
	components.Health.SetValue(crate, components.HealthData{
		Current: cfg.Crate.Health,
		Max:     cfg.Crate.Health,
	})

	return crate
}

func bodyPhysics(mass float64) components.PhysicsData {
	return components.PhysicsData{
		Mass:     mass,
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Physics.Friction,
		MaxSpeed: cfg.Physics.MaxSpeed,
	}
}
