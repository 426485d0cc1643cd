package systems

import (
	"math"
	"testing"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/leap-fish/necs/esync"
)

func TestSetExplodeAll(t *testing.T) {
	w := newTestWorld(t, true)
	healthy := factory.CreateBarrel(w, 100, 100, testProps())
	pending := factory.CreateBarrel(w, 500, 100, testProps())
	barrelState(pending).Health = 0

	SetExplodeAll(w, true)

	if !barrelState(healthy).Props.ExplodeAllInSameTick {
		t.Fatalf("live barrel not switched")
	}
	if barrelState(healthy).Dead() {
		t.Fatalf("healthy barrel detonated")
	}
	if !barrelState(pending).Dead() {
		t.Fatalf("barrel waiting for the tick check should go off when switching")
	}

	SetExplodeAll(w, false)
	if barrelState(healthy).Props.ExplodeAllInSameTick {
		t.Fatalf("live barrel not switched back")
	}
	if !barrelState(pending).Props.ExplodeAllInSameTick {
		t.Fatalf("dead barrel props should be left alone")
	}
}

func TestSetExplodeAllOnReplica(t *testing.T) {
	w := newTestWorld(t, false)
	b := factory.CreateBarrel(w, 100, 100, testProps())

	SetExplodeAll(w, true)

	if barrelState(b).Props.ExplodeAllInSameTick {
		t.Fatalf("replica changed barrel props")
	}
}

func TestSettings(t *testing.T) {
	w := newTestWorld(t, true)
	if Settings(w) != nil {
		t.Fatalf("world without presenter returned settings")
	}

	factory.CreatePresenter(w, components.SandboxData{ShowRadius: true, SFXVolume: 0.5})
	sb := Settings(w)
	if sb == nil || !sb.ShowRadius || sb.SFXVolume != 0.5 {
		t.Fatalf("settings = %+v", sb)
	}
	if !showRadius(w) {
		t.Fatalf("radius overlay should be on")
	}
}

func TestShakeOffset(t *testing.T) {
	w := newTestWorld(t, true)
	if x, y := ShakeOffset(w); x != 0 || y != 0 {
		t.Fatalf("offset without presenter = (%v, %v)", x, y)
	}

	factory.CreatePresenter(w, components.SandboxData{})
	TriggerScreenShake(w, 4, 12)

	x, y := ShakeOffset(w)
	if x != 0 || y != 4 {
		t.Fatalf("first frame offset = (%v, %v), want (0, 4)", x, y)
	}

	UpdateEffects(w)
	x, y = ShakeOffset(w)
	if math.Hypot(x, y) >= 4*math.Sqrt2 || (x == 0 && y == 0) {
		t.Fatalf("offset should decay but stay non-zero: (%v, %v)", x, y)
	}

	for i := 0; i < 12; i++ {
		UpdateEffects(w)
	}
	if x, y := ShakeOffset(w); x != 0 || y != 0 {
		t.Fatalf("offset after shake ended = (%v, %v)", x, y)
	}
}

func TestTriggerScreenShakeKeepsStrongest(t *testing.T) {
	w := newTestWorld(t, true)
	factory.CreatePresenter(w, components.SandboxData{})

	TriggerScreenShake(w, 6, 5)
	TriggerScreenShake(w, 2, 10)

	entry, _ := components.ScreenShake.First(w.World)
	shake := components.ScreenShake.Get(entry)
	if shake.Intensity != 6 || shake.Duration != 10 {
		t.Fatalf("shake = %+v, want intensity 6 for 10 frames", shake)
	}
}

func TestCountProps(t *testing.T) {
	w := newTestWorld(t, true)
	spent := factory.CreateBarrel(w, 100, 100, testProps())
	factory.CreateBarrel(w, 500, 100, testProps())
	factory.CreateCrate(w, 300, 300)
	Detonate(w, spent)

	// A replicated barrel and a replicated dead crate.
	for _, p := range []netcomponents.NetPropData{
		{Model: string(cfg.ModelBarrel)},
		{Model: string(cfg.ModelCrate), Dead: true},
	} {
		entry := w.World.Entry(w.World.Create(netcomponents.NetProp, esync.NetworkIdComponent))
		netcomponents.NetProp.SetValue(entry, p)
	}

	got := CountProps(w)
	want := PropCounts{Live: 2, Spent: 1, Crates: 1}
	if got != want {
		t.Fatalf("counts = %+v, want %+v", got, want)
	}
}
