package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/server/core"
	"github.com/automoto/kaboom/shared/protocol"
)

func main() {
	port := flag.Uint("port", cfg.Net.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Net.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Kaboom Yard", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	assetsDir := flag.String("assets", cfg.Net.AssetsDir, "Directory containing levels/")
	level := flag.String("level", cfg.Net.Level, "Level to host")
	tuningPath := flag.String("tuning", "", "Barrel tuning YAML (optional)")
	watch := flag.Bool("watch", false, "Reload the level whenever the tuning file changes")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	tuning := cfg.Barrel.Defaults
	if *tuningPath != "" {
		var err error
		tuning, err = cfg.LoadTuning(*tuningPath, tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	levelData, err := core.LoadLevel(*assetsDir, *level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(core.Options{
		Name:      *name,
		Version:   *version,
		TickRate:  *tickRate,
		LevelName: *level,
		Level:     levelData,
		Tuning:    tuning,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watch && *tuningPath != "" {
		if err := cfg.WatchTuning(ctx, *tuningPath, cfg.Barrel.Defaults, server.SetTuning); err != nil {
			log.Printf("[tuning] hot reload disabled: %v", err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		cancel()
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting kaboom server %q on port %d (tick rate: %d/s, level: %s)",
		*name, *port, *tickRate, *level)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
