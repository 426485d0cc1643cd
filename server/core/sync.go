package core

import (
	"log"

	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/messages"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/automoto/kaboom/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// step runs one network tick worth of simulation and publishes the result.
func (s *Server) step(steps int) {
	s.processCommands()

	for i := 0; i < steps; i++ {
		s.ecs.Update()
	}

	s.syncProps()
	s.flushEvents()
}

// syncProps mirrors every prop into its NetProp component. Props created
// since the last call are registered for network sync. Platforms are not
// replicated; clients load them from the same level file.
func (s *Server) syncProps() {
	var props []*donburi.Entry
	components.Object.Each(s.world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Model) || components.Model.Get(e).Key == cfg.ModelPlatform {
			return
		}
		props = append(props, e)
	})

	for _, e := range props {
		if !e.HasComponent(netcomponents.NetProp) {
			e.AddComponent(netcomponents.NetProp)
			entity := e.Entity()
			if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetProp)); err != nil {
				log.Printf("[server] failed to set up network sync for prop: %v", err)
			}
		}
		netcomponents.NetProp.SetValue(e, propState(e))
	}
}

func propState(e *donburi.Entry) netcomponents.NetPropData {
	obj := components.Object.Get(e)
	state := netcomponents.NetPropData{
		X:     obj.X,
		Y:     obj.Y,
		W:     obj.W,
		H:     obj.H,
		Model: string(components.Model.Get(e).Key),
	}
	switch {
	case e.HasComponent(components.Barrel):
		b := components.Barrel.Get(e)
		state.Health = b.Health
		state.Dead = b.Dead()
	case e.HasComponent(components.Health):
		state.Health = components.Health.Get(e).Current
		state.Dead = e.HasComponent(components.Death)
	}
	return state
}

// flushEvents broadcasts the sounds and explosions produced this tick.
func (s *Server) flushEvents() {
	for _, ex := range systems.DrainExplosions(s.ecs) {
		log.Printf("[server] barrel detonated at (%.0f, %.0f)", ex.X, ex.Y)
		s.broadcast(messages.ExplosionEvent{X: ex.X, Y: ex.Y, Radius: ex.Radius})
	}
	for _, cue := range systems.DrainSFX(s.ecs) {
		s.broadcast(messages.SoundEvent{Sound: int(cue.Sound), X: cue.X, Y: cue.Y})
	}
}
