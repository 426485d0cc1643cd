package components

import (
	cfg "github.com/automoto/kaboom/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the cursor in screen pixels (singleton component).
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current          [cfg.ActionCount]bool
	Previous         [cfg.ActionCount]bool
	CursorX, CursorY int
}

var Input = donburi.NewComponentType[InputData]()
