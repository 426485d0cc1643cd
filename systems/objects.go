package systems

import (
	"github.com/automoto/kaboom/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collision object with the space cells it
// now covers.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
