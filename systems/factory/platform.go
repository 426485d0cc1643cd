package factory

import (
	"github.com/automoto/kaboom/archetypes"
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a static solid. Platforms are valid collision
// partners with zero velocity but have no physical body.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addToSpace(ecs, platform, newBox(x, y, w, h, tags.ResolvSolid))
	components.Model.SetValue(platform, components.ModelData{Key: cfg.ModelPlatform})
	return platform
}
