package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/megagolem/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded TMX levels.
func LevelFS() fs.FS {
	return assetFS
}

// LevelPath is the embedded TMX path of level n.
func LevelPath(n int) string {
	return fmt.Sprintf("levels/level%02d.tmx", n)
}

// LoadLevel returns level n. Built-in tables take precedence over TMX files.
func LoadLevel(n int) (*leveldata.Level, error) {
	if leveldata.HasBuiltin(n) {
		return leveldata.Builtin(n)
	}
	level, err := leveldata.LoadTMX(assetFS, LevelPath(n))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	return level, nil
}
