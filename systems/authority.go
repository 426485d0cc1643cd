package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/yohamta/donburi/ecs"
)

// HasAuthority reports whether this world runs the authoritative simulation.
// Replica worlds, and worlds without an authority singleton, never mutate
// barrel state themselves.
func HasAuthority(ecs *ecs.ECS) bool {
	entry, ok := components.Authority.First(ecs.World)
	if !ok {
		return false
	}
	return components.Authority.Get(entry).Server
}
