// Package assets embeds the sandbox levels and sound effects.
package assets

import (
	"embed"
	"io/fs"
	"path"

	"github.com/automoto/kaboom/shared/leveldata"
)

const levelDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel parses an embedded level by name, e.g. "yard".
func LoadLevel(name string) (*leveldata.LevelData, error) {
	return leveldata.LoadLevel(assetFS, path.Join(levelDir, name+".tmx"))
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelDir)
	return names, err
}
