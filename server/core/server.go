package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/leveldata"
	"github.com/automoto/kaboom/shared/messages"
	"github.com/automoto/kaboom/systems"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a Server.
type Options struct {
	Name      string
	Version   string // required client version, empty accepts any
	TickRate  int
	LevelName string
	Level     *leveldata.LevelData
	Tuning    cfg.BarrelProps
}

// command mutates the simulation. Commands only run on the loop goroutine.
type command func(s *Server)

// Server runs the authoritative prop simulation and replicates it to clients.
type Server struct {
	world     donburi.World
	ecs       *ecs.ECS
	loop      *GameLoop
	transport *transports.WsServerTransport
	opts      Options

	// Loop goroutine only.
	tuning cfg.BarrelProps

	mu       sync.Mutex
	clients  map[*router.NetworkClient]bool // true once joined
	commands []command
}

// NewServer builds the world for opts.Level and registers the network
// handlers. protocol.RegisterComponents must have been called.
func NewServer(opts Options) (*Server, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("no level")
	}
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Net.TickRate
	}

	world := donburi.NewWorld()
	s := &Server{
		world:   world,
		ecs:     ecs.NewECS(world),
		opts:    opts,
		tuning:  opts.Tuning,
		clients: make(map[*router.NetworkClient]bool),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	factory.CreateWorldState(s.ecs, true)
	if err := factory.BuildLevel(s.ecs, opts.Level, opts.Tuning); err != nil {
		return nil, fmt.Errorf("build level %s: %w", opts.LevelName, err)
	}
	systems.AddGameplaySystems(s.ecs)
	s.syncProps()

	s.setupRouterCallbacks()

	return s, nil
}

// Start begins the game loop and serves websocket clients on port. It blocks
// until the transport stops.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the game loop
func (s *Server) Stop() {
	s.loop.Stop()
}

// SetTuning replaces the barrel tuning and rebuilds the level with it. Safe
// to call from any goroutine.
func (s *Server) SetTuning(props cfg.BarrelProps) {
	s.enqueue(func(s *Server) {
		s.tuning = props
		if err := systems.ReloadLevel(s.ecs, s.opts.Level, props); err != nil {
			log.Printf("[server] reload with new tuning failed: %v", err)
			return
		}
		s.syncProps()
		log.Printf("[server] tuning applied, level %s rebuilt", s.opts.LevelName)
	})
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
		s.mu.Lock()
		s.clients[client] = false
		s.mu.Unlock()
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.mu.Lock()
		delete(s.clients, client)
		s.mu.Unlock()
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, req messages.ShootRequest) {
		if !s.joined(client) {
			return
		}
		damage := clampShot(req.Damage)
		s.enqueue(func(s *Server) {
			systems.ShootAt(s.ecs, req.X, req.Y, damage)
		})
	})

	router.On(func(client *router.NetworkClient, req messages.SpawnBarrelRequest) {
		if !s.joined(client) {
			return
		}
		s.enqueue(func(s *Server) {
			factory.CreateBarrel(s.ecs, req.X, req.Y, s.tuning)
		})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.Printf("[server] rejecting %s: version %q, want %q", client.Id(), req.Version, s.opts.Version)
		send(client, messages.JoinRejected{
			Reason: fmt.Sprintf("version mismatch: server requires %s", s.opts.Version),
		})
		return
	}

	s.mu.Lock()
	s.clients[client] = true
	s.mu.Unlock()

	send(client, messages.JoinAccepted{
		ServerName: s.opts.Name,
		TickRate:   s.opts.TickRate,
		Level:      s.opts.LevelName,
	})
	log.Printf("[server] %s joined as %q", client.Id(), req.Name)
}

func (s *Server) joined(client *router.NetworkClient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[client]
}

func (s *Server) enqueue(c command) {
	s.mu.Lock()
	s.commands = append(s.commands, c)
	s.mu.Unlock()
}

// processCommands runs everything queued since the last tick.
func (s *Server) processCommands() {
	s.mu.Lock()
	pending := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, c := range pending {
		c(s)
	}
}

// broadcast sends msg to every joined client.
func (s *Server) broadcast(msg any) {
	s.mu.Lock()
	targets := make([]*router.NetworkClient, 0, len(s.clients))
	for client, joined := range s.clients {
		if joined {
			targets = append(targets, client)
		}
	}
	s.mu.Unlock()

	for _, client := range targets {
		send(client, msg)
	}
}

func send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s failed: %v", client.Id(), err)
	}
}

// ClientCount returns the number of joined clients
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, joined := range s.clients {
		if joined {
			n++
		}
	}
	return n
}

func clampShot(damage float64) float64 {
	if damage <= 0 {
		return 0
	}
	if damage > cfg.Net.ShootMax {
		return cfg.Net.ShootMax
	}
	return damage
}
