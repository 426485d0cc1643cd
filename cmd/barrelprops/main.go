// Command barrelprops prints the barrel property catalog as YAML, for level
// editors and tuning files.
package main

import (
	"log"
	"os"

	"github.com/automoto/kaboom/config"
	"gopkg.in/yaml.v3"
)

func main() {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(config.BarrelProperties()); err != nil {
		log.Fatalf("Failed to encode properties: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}
}
