// Package leveldata provides TMX level parsing shared between the sandbox and
// the server. It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// LevelData holds everything a world needs from a TMX level file.
type LevelData struct {
	SolidRects []SolidRect
	Barrels    []Placement
	Crates     []Placement
	MapWidth   int
	MapHeight  int
}

// SolidRect represents a run of solid collision tiles on one row.
type SolidRect struct {
	X, Y, W, H float64
}

// Placement is a prop position (top-left) plus the raw custom properties set
// on the Tiled object. Barrel placements use them as property overrides.
type Placement struct {
	X, Y       float64
	Properties map[string]string
}
