package factory

import (
	"github.com/automoto/kaboom/archetypes"
	"github.com/automoto/kaboom/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateWorldState creates the singleton carrying authority, queued sounds,
// queued events and contact memory. server marks the world authoritative.
func CreateWorldState(ecs *ecs.ECS, server bool) *donburi.Entry {
	state := archetypes.World.Spawn(ecs)
	components.Authority.SetValue(state, components.AuthorityData{Server: server})
	components.Contacts.SetValue(state, components.ContactsData{
		Touching: make(map[components.ContactPair]struct{}),
	})
	return state
}

// addToSpace links obj to entry and registers it with the world's space.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newBox(x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
