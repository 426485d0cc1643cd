package config

// PropertyKind is the value type of an editable barrel property.
type PropertyKind string

const (
	KindFloat PropertyKind = "float"
	KindBool  PropertyKind = "bool"
)

// PropertyDef describes one barrel property as shown by placement tooling.
type PropertyDef struct {
	Key     string       `yaml:"key"`
	Title   string       `yaml:"title"`
	Kind    PropertyKind `yaml:"kind"`
	Default any          `yaml:"default"`

	floatField func(*BarrelProps) *float64
	boolField  func(*BarrelProps) *bool
}

var propertyDefs = []PropertyDef{
	{Key: "maxForce", Title: "Max Force", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.MaxForce }},
	{Key: "forceFalloffDistance", Title: "Force Falloff Distance", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.ForceFalloffDistance }},
	{Key: "maxDamage", Title: "Max Damage", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.MaxDamage }},
	{Key: "damageFalloffDistance", Title: "Damage Falloff Distance", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.DamageFalloffDistance }},
	{Key: "minImpactSpeedForDamage", Title: "Min Impact Speed For Damage", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.MinImpactSpeedForDamage }},
	{Key: "impactDamageDivider", Title: "Impact Damage Divider", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.ImpactDamageDivider }},
	{Key: "minImpactSpeedForDetonation", Title: "Min Impact Speed For Detonation", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.MinImpactSpeedForDetonation }},
	{Key: "startingHealth", Title: "Starting Health", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.StartingHealth }},
	{Key: "launchForce", Title: "Launch Force", Kind: KindFloat,
		floatField: func(p *BarrelProps) *float64 { return &p.LaunchForce }},
	{Key: "explodeAllInSameTick", Title: "Explode All In Same Tick", Kind: KindBool,
		boolField: func(p *BarrelProps) *bool { return &p.ExplodeAllInSameTick }},
}

// BarrelProperties returns the property catalog with defaults filled in from
// the current Barrel.Defaults.
func BarrelProperties() []PropertyDef {
	defaults := Barrel.Defaults
	out := make([]PropertyDef, len(propertyDefs))
	for i, def := range propertyDefs {
		if def.Kind == KindBool {
			def.Default = *def.boolField(&defaults)
		} else {
			def.Default = *def.floatField(&defaults)
		}
		out[i] = def
	}
	return out
}

// PropertyByKey looks up a property definition by its yaml key.
func PropertyByKey(key string) (PropertyDef, bool) {
	for _, def := range propertyDefs {
		if def.Key == key {
			return def, true
		}
	}
	return PropertyDef{}, false
}
