package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the simulation in tick order. Barrels whose
// health ran out last tick go off before anything moves.
func AddGameplaySystems(ecs *ecs.ECS) {
	ecs.AddSystem(UpdateBarrels)
	ecs.AddSystem(UpdatePhysics)
	ecs.AddSystem(UpdateCollisions)
	ecs.AddSystem(UpdateObjects)
	ecs.AddSystem(UpdateCombat)
	ecs.AddSystem(UpdateDeaths)
	ecs.AddSystem(UpdateEffects)
}
