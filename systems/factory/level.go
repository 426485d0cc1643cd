package factory

import (
	"fmt"

	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel creates the space, solids and props of a parsed level. base is
// the barrel tuning placements override per instance.
func BuildLevel(ecs *ecs.ECS, data *leveldata.LevelData, base cfg.BarrelProps) error {
	BuildSolids(ecs, data)

	for i, p := range data.Barrels {
		props, err := barrelProps(base, p.Properties)
		if err != nil {
			return fmt.Errorf("barrel %d at (%.0f, %.0f): %w", i, p.X, p.Y, err)
		}
		CreateBarrel(ecs, p.X, p.Y, props)
	}

	for _, p := range data.Crates {
		CreateCrate(ecs, p.X, p.Y)
	}

	return nil
}

// BuildSolids creates the space and static solids of a level without any
// props. Replicas use it to draw the level the server simulates.
func BuildSolids(ecs *ecs.ECS, data *leveldata.LevelData) {
	cell := cfg.C.TileSize
	CreateSpace(ecs, data.MapWidth, data.MapHeight, cell, cell)

	for _, r := range data.SolidRects {
		CreatePlatform(ecs, r.X, r.Y, r.W, r.H)
	}
}

func barrelProps(base cfg.BarrelProps, overrides map[string]string) (cfg.BarrelProps, error) {
	props := base
	for key, value := range overrides {
		if err := props.Apply(key, value); err != nil {
			return base, err
		}
	}
	if err := props.Validate(); err != nil {
		return base, err
	}
	return props, nil
}
