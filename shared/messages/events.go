package messages

// ExplosionEvent is broadcast when a barrel detonates.
type ExplosionEvent struct {
	X, Y   float64
	Radius float64 // force falloff distance
}

// SoundEvent is broadcast for every sound the simulation emits.
type SoundEvent struct {
	Sound int // config.SoundID
	X, Y  float64
}
