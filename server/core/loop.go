package core

import (
	"log"
	"time"

	cfg "github.com/automoto/kaboom/config"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second, %d steps per tick",
		g.tickRate, stepsPerTick(g.tickRate))

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.step(stepsPerTick(g.tickRate))

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}

// stepsPerTick is how many simulation frames run per network tick, so the
// physics tuned for SimRate behaves the same at any tick rate.
func stepsPerTick(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	steps := cfg.Net.SimRate / tickRate
	if steps < 1 {
		steps = 1
	}
	return steps
}
