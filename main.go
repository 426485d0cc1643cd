package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/kaboom/assets"
	"github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/fonts"
	"github.com/automoto/kaboom/network"
	"github.com/automoto/kaboom/scenes"
	"github.com/automoto/kaboom/shared/protocol"
	"github.com/automoto/kaboom/systems"
	"github.com/automoto/kaboom/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if closer, ok := g.scene.(interface{ Close() }); ok {
		closer.Close()
	}
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height+ui.Height)
	return g.bounds.Dx(), g.bounds.Dy()
}

func main() {
	connect := flag.String("connect", "", "Spectate a server at host:port instead of running locally")
	level := flag.String("level", "", "Level to load (default: last used, then "+config.Net.Level+")")
	tuningPath := flag.String("tuning", "", "Barrel tuning YAML, reloaded on change (optional)")
	version := flag.String("version", "", "Client version sent when joining a server")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()

	opts := scenes.SandboxOptions{
		Level:      config.Net.Level,
		Tuning:     config.Barrel.Defaults,
		TuningPath: *tuningPath,
		Settings:   saved,
	}
	if saved != nil && levelExists(saved.Level) {
		opts.Level = saved.Level
	}
	if *level != "" {
		opts.Level = *level
	}
	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath, config.Barrel.Defaults)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		opts.Tuning = tuning
	}

	g := &Game{}
	if *connect != "" {
		client := network.NewClient()
		client.Connect(*connect, *version, config.Sandbox.Name)
		g.scene = scenes.NewSpectatorScene(g, client, opts)
	} else {
		g.scene = scenes.NewSandboxScene(g, opts)
	}

	ebiten.SetWindowSize(config.C.Width*2, (config.C.Height+ui.Height)*2)
	ebiten.SetWindowTitle("kaboom")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// levelExists reports whether name is one of the embedded levels.
func levelExists(name string) bool {
	names, err := assets.LevelNames()
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
