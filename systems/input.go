package systems

import (
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the singleton Input component.
// Scenes call it once per frame before reading actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	x, y := ebiten.CursorPosition()
	pollInput(input, x, y, devicePressed)
}

// devicePressed reports whether any device bound in binding is held down.
func devicePressed(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// pollInput swaps the frame buffers and records which bound actions are held.
func pollInput(input *components.InputData, cursorX, cursorY int, pressed func(cfg.InputBinding) bool) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.CursorX, input.CursorY = cursorX, cursorY

	for actionID, binding := range cfg.Input.Bindings {
		if pressed(binding) {
			input.Current[actionID] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ActionJustPressed reports whether id went down this frame.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(ecs), id).JustPressed
}

// Cursor returns the cursor position polled by UpdateInput.
func Cursor(ecs *ecs.ECS) (int, int) {
	input := getOrCreateInput(ecs)
	return input.CursorX, input.CursorY
}
