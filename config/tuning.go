package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ParseTuning overlays the yaml document in data on top of base. Keys absent
// from the document keep their base value; unknown keys are an error.
func ParseTuning(data []byte, base BarrelProps) (BarrelProps, error) {
	props := base

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&props); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode tuning: %w", err)
	}
	if err := props.Validate(); err != nil {
		return base, fmt.Errorf("invalid tuning: %w", err)
	}
	return props, nil
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string, base BarrelProps) (BarrelProps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data, base)
}

// WatchTuning reloads path whenever it changes and hands the result to apply.
// apply runs on the watcher goroutine; callers that touch a world must hand
// the value over to the simulation goroutine themselves.
func WatchTuning(ctx context.Context, path string, base BarrelProps, apply func(BarrelProps)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				props, err := LoadTuning(path, base)
				if err != nil {
					log.Printf("[tuning] reload failed: %v", err)
					continue
				}
				log.Printf("[tuning] reloaded %s", path)
				apply(props)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[tuning] watcher error: %v", err)
			}
		}
	}()
	return nil
}
