package archetypes

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Model,
	)
	Barrel = newArchetype(
		tags.Barrel,
		components.Barrel,
		components.Object,
		components.Physics,
		components.Model,
	)
	Wreckage = newArchetype(
		tags.Wreckage,
		components.Object,
		components.Physics,
		components.Model,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Health,
		components.Object,
		components.Physics,
		components.Model,
	)
	Particle = newArchetype(
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.Authority,
		components.Audio,
		components.Events,
		components.Contacts,
	)
	Presenter = newArchetype(
		components.Sandbox,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
