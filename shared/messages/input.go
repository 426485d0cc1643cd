package messages

// ShootRequest asks the server to deal damage at a world position.
type ShootRequest struct {
	X, Y   float64
	Damage float64
}

// SpawnBarrelRequest asks the server to place a barrel with the current
// tuning, top-left corner at X, Y.
type SpawnBarrelRequest struct {
	X, Y float64
}
