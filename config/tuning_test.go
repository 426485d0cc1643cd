package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseTuningOverlaysBase(t *testing.T) {
	base := Barrel.Defaults

	props, err := ParseTuning([]byte("maxForce: 1200\nexplodeAllInSameTick: true\n"), base)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if props.MaxForce != 1200 {
		t.Fatalf("expected maxForce 1200, got %v", props.MaxForce)
	}
	if !props.ExplodeAllInSameTick {
		t.Fatalf("expected explodeAllInSameTick override")
	}
	if props.StartingHealth != base.StartingHealth {
		t.Fatalf("untouched key changed: startingHealth %v, want %v", props.StartingHealth, base.StartingHealth)
	}
}

func TestParseTuningErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown_key", "maxForse: 3\n", "decode tuning"},
		{"zero_divider", "impactDamageDivider: 0\n", "impactDamageDivider"},
		{"negative_threshold", "minImpactSpeedForDamage: -1\n", "impact speed"},
		{"bad_type", "maxDamage: lots\n", "decode tuning"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			props, err := ParseTuning([]byte(c.doc), Barrel.Defaults)
			if err == nil {
				t.Fatalf("expected error for %q", c.doc)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
			if props != Barrel.Defaults {
				t.Fatalf("failed parse must return base unchanged")
			}
		})
	}
}

func TestParseTuningEmptyDocument(t *testing.T) {
	props, err := ParseTuning(nil, Barrel.Defaults)
	if err != nil {
		t.Fatalf("empty tuning should be accepted: %v", err)
	}
	if props != Barrel.Defaults {
		t.Fatalf("empty tuning changed props")
	}
}

func TestLoadTuningFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barrel.yaml")
	if err := os.WriteFile(path, []byte("startingHealth: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	props, err := LoadTuning(path, Barrel.Defaults)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if props.StartingHealth != 45 {
		t.Fatalf("expected startingHealth 45, got %v", props.StartingHealth)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"), Barrel.Defaults); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestApplyProperty(t *testing.T) {
	props := Barrel.Defaults
	if err := props.Apply("launchForce", "250.5"); err != nil {
		t.Fatalf("Apply float: %v", err)
	}
	if props.LaunchForce != 250.5 {
		t.Fatalf("launchForce = %v", props.LaunchForce)
	}
	if err := props.Apply("explodeAllInSameTick", "true"); err != nil {
		t.Fatalf("Apply bool: %v", err)
	}
	if !props.ExplodeAllInSameTick {
		t.Fatalf("explodeAllInSameTick not set")
	}
	if err := props.Apply("colour", "red"); err == nil {
		t.Fatalf("expected unknown property error")
	}
	if err := props.Apply("maxDamage", "a lot"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBarrelPropertiesCatalog(t *testing.T) {
	defs := BarrelProperties()
	if len(defs) != 10 {
		t.Fatalf("expected 10 properties, got %d", len(defs))
	}

	seen := make(map[string]bool)
	for _, def := range defs {
		if def.Title == "" {
			t.Fatalf("property %s has no title", def.Key)
		}
		if seen[def.Key] {
			t.Fatalf("duplicate property %s", def.Key)
		}
		seen[def.Key] = true
	}

	start, ok := PropertyByKey("startingHealth")
	if !ok || start.Title != "Starting Health" {
		t.Fatalf("startingHealth lookup failed: %+v", start)
	}
	for _, def := range defs {
		if def.Key == "startingHealth" && def.Default != Barrel.Defaults.StartingHealth {
			t.Fatalf("catalog default %v, want %v", def.Default, Barrel.Defaults.StartingHealth)
		}
	}

	// The catalog marshals to the same keys tuning files use.
	out, err := yaml.Marshal(defs)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if !strings.Contains(string(out), "key: minImpactSpeedForDetonation") {
		t.Fatalf("catalog yaml missing key:\n%s", out)
	}
}
