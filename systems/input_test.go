package systems

import (
	"testing"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// holding reports a binding as pressed when it contains key.
func holding(key ebiten.Key) func(cfg.InputBinding) bool {
	return func(b cfg.InputBinding) bool {
		for _, k := range b.Keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestActionStatesAcrossFrames(t *testing.T) {
	input := &components.InputData{}
	none := func(cfg.InputBinding) bool { return false }

	frames := []struct {
		name    string
		pressed func(cfg.InputBinding) bool
		want    components.ActionState
	}{
		{"press", holding(ebiten.KeyT), components.ActionState{Pressed: true, JustPressed: true}},
		{"hold", holding(ebiten.KeyT), components.ActionState{Pressed: true}},
		{"release", none, components.ActionState{JustReleased: true}},
		{"idle", none, components.ActionState{}},
	}
	for _, f := range frames {
		pollInput(input, 0, 0, f.pressed)
		if got := GetAction(input, cfg.ActionToggleChain); got != f.want {
			t.Fatalf("%s: state = %+v, want %+v", f.name, got, f.want)
		}
	}
}

func TestPollInputRecordsCursorAndOnlyBoundActions(t *testing.T) {
	input := &components.InputData{}
	pollInput(input, 120, 48, holding(ebiten.KeyM))

	if input.CursorX != 120 || input.CursorY != 48 {
		t.Fatalf("cursor = (%d, %d)", input.CursorX, input.CursorY)
	}
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		if want := id == cfg.ActionMute; input.Current[id] != want {
			t.Fatalf("action %d pressed = %v, want %v", id, input.Current[id], want)
		}
	}
}

func TestInputSingleton(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	a := getOrCreateInput(w)
	a.CursorX = 7
	if b := getOrCreateInput(w); b.CursorX != 7 {
		t.Fatalf("second lookup created a new input singleton")
	}
	if x, _ := Cursor(w); x != 7 {
		t.Fatalf("Cursor x = %d", x)
	}
	if ActionJustPressed(w, cfg.ActionShoot) {
		t.Fatalf("nothing polled yet")
	}
}
