package core

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/automoto/kaboom/shared/leveldata"
)

// LoadLevel reads levels/<name>.tmx from the assets directory on disk.
func LoadLevel(assetsDir, name string) (*leveldata.LevelData, error) {
	data, err := leveldata.LoadLevel(os.DirFS(assetsDir), path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	log.Printf("[server] loaded level %s: %d solids, %d barrels, %d crates, %dx%d map",
		name, len(data.SolidRects), len(data.Barrels), len(data.Crates), data.MapWidth, data.MapHeight)
	return data, nil
}
