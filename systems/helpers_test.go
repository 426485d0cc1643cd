package systems

import (
	"testing"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T, server bool) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 368, 16, 16)
	factory.CreateWorldState(e, server)
	return e
}

func testProps() cfg.BarrelProps {
	return cfg.Barrel.Defaults
}

func countModel(e *ecs.ECS, key cfg.ModelID) int {
	n := 0
	components.Model.Each(e.World, func(entry *donburi.Entry) {
		if components.Model.Get(entry).Key == key {
			n++
		}
	})
	return n
}

func countSounds(cues []components.SoundCue, sound cfg.SoundID) int {
	n := 0
	for _, c := range cues {
		if c.Sound == sound {
			n++
		}
	}
	return n
}

func barrelState(entry *donburi.Entry) *components.BarrelData {
	return components.Barrel.Get(entry)
}
