package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	groupPlatforms   = "Platforms"
	groupEnemies     = "Enemies"
	groupCoins       = "Coins"
	groupBoss        = "Boss"
	groupGoal        = "Goal"
	groupPlayerStart = "PlayerStart"
)

// LoadTMX parses a level made in Tiled. Platforms are rectangle objects,
// everything else is a point object. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	hasStart := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			p := Point{X: o.X, Y: o.Y}
			switch og.Name {
			case groupPlatforms:
				level.Platforms = append(level.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			case groupEnemies:
				level.Enemies = append(level.Enemies, p)
			case groupCoins:
				level.Coins = append(level.Coins, p)
			case groupBoss:
				level.Boss = &p
			case groupGoal:
				level.Goal = &p
			case groupPlayerStart:
				level.PlayerStart = p
				hasStart = true
			}
		}
	}

	if !hasStart {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerStart)
	}

	// Platforms sorted top to bottom keep the draw order stable
	sort.SliceStable(level.Platforms, func(i, j int) bool {
		return level.Platforms[i].Y < level.Platforms[j].Y
	})

	return level, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by file stem, plus the sorted list of stems.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
