package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files
const (
	LayerSolid  = "wg-tiles"
	GroupBarrel = "Barrels"
	GroupCrate  = "Crates"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS (sandbox) or os.DirFS (server).
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles are merged into horizontal runs to keep the space small.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolid {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				if solid && runStart < 0 {
					runStart = x
				}
				if !solid && runStart >= 0 {
					data.SolidRects = append(data.SolidRects, SolidRect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupBarrel:
			data.Barrels = append(data.Barrels, placements(og.Objects)...)
		case GroupCrate:
			data.Crates = append(data.Crates, placements(og.Objects)...)
		}
	}

	// Sort props left-to-right for a stable spawn order
	sortPlacements(data.Barrels)
	sortPlacements(data.Crates)

	return data, nil
}

func placements(objects []*tiled.Object) []Placement {
	out := make([]Placement, 0, len(objects))
	for _, o := range objects {
		p := Placement{X: o.X, Y: o.Y}
		if len(o.Properties) > 0 {
			p.Properties = make(map[string]string, len(o.Properties))
			for _, prop := range o.Properties {
				p.Properties[prop.Name] = prop.Value
			}
		}
		out = append(out, p)
	}
	return out
}

func sortPlacements(ps []Placement) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
