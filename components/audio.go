package components

import (
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound effects (singleton component). Whoever
// presents the world drains the queue: the sandbox plays them, the server
// broadcasts them.
type AudioData struct {
	PendingSFX []SoundCue
}

// SoundCue is a sound anchored at a world position.
type SoundCue struct {
	Sound cfg.SoundID
	X, Y  float64
}

var Audio = donburi.NewComponentType[AudioData]()
