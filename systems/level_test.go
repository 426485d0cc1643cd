package systems

import (
	"testing"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/leveldata"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/automoto/kaboom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevel() *leveldata.LevelData {
	return &leveldata.LevelData{
		MapWidth:   640,
		MapHeight:  368,
		SolidRects: []leveldata.SolidRect{{X: 0, Y: 352, W: 640, H: 16}},
		Barrels: []leveldata.Placement{
			{X: 100, Y: 328},
			{X: 400, Y: 328, Properties: map[string]string{"startingHealth": "40"}},
		},
		Crates: []leveldata.Placement{{X: 560, Y: 332}},
	}
}

func newLevelWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorldState(w, true)
	if err := factory.BuildLevel(w, testLevel(), testProps()); err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	return w
}

func TestReloadLevelRestoresProps(t *testing.T) {
	w := newLevelWorld(t)

	first, _ := tags.Barrel.First(w.World)
	Detonate(w, first)
	if countModel(w, cfg.ModelBarrelTop) != 1 {
		t.Fatalf("setup: detonation left no top piece")
	}

	if err := ReloadLevel(w, testLevel(), testProps()); err != nil {
		t.Fatalf("ReloadLevel: %v", err)
	}

	checks := []struct {
		model cfg.ModelID
		want  int
	}{
		{cfg.ModelBarrel, 2},
		{cfg.ModelBarrelBottom, 0},
		{cfg.ModelBarrelTop, 0},
		{cfg.ModelCrate, 1},
		{cfg.ModelPlatform, 1},
	}
	for _, c := range checks {
		if got := countModel(w, c.model); got != c.want {
			t.Fatalf("%s count = %d, want %d", c.model, got, c.want)
		}
	}

	spaces := 0
	components.Space.Each(w.World, func(*donburi.Entry) { spaces++ })
	if spaces != 1 {
		t.Fatalf("expected one collision space, got %d", spaces)
	}
	if n := len(components.Space.Get(components.Space.MustFirst(w.World)).Objects()); n != 4 {
		t.Fatalf("space holds %d objects, want 4", n)
	}
	if cues := DrainSFX(w); len(cues) != 0 {
		t.Fatalf("stale sounds survived the reload: %v", cues)
	}
	if ex := DrainExplosions(w); len(ex) != 0 {
		t.Fatalf("stale explosions survived the reload: %v", ex)
	}

	var healths []float64
	tags.Barrel.Each(w.World, func(e *donburi.Entry) {
		healths = append(healths, barrelState(e).Health)
	})
	if len(healths) != 2 || healths[0]+healths[1] != 60 {
		t.Fatalf("barrel healths = %v, want 20 and the 40 override", healths)
	}
	if !HasAuthority(w) {
		t.Fatalf("world state lost in reload")
	}
}

func TestReloadLevelRejectsBadOverride(t *testing.T) {
	w := newLevelWorld(t)

	bad := testLevel()
	bad.Barrels[1].Properties = map[string]string{"startingHealth": "-5"}

	if err := ReloadLevel(w, bad, testProps()); err == nil {
		t.Fatalf("expected error for negative startingHealth")
	}
}
