package components

import "github.com/yohamta/donburi"

// SandboxData holds the player-facing toggles of a local or spectated world
// (singleton component). Renderers read it, scenes write it.
type SandboxData struct {
	ExplodeAll bool
	ShowRadius bool
	Muted      bool
	SFXVolume  float64
	Level      string
	Status     string
}

var Sandbox = donburi.NewComponentType[SandboxData]()
