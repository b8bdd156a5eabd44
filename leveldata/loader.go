package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader recognizes in a TMX map.
const (
	tileLayerName  = "tiles"
	goalGroupName  = "goal"
	spawnGroupName = "spawn"
)

// LoadLevel parses a single TMX file. Every non-empty tile in the "tiles"
// layer becomes a solid rect; the first object in the optional "goal" and
// "spawn" groups becomes the goal region and spawn point.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: x * levelMap.TileWidth,
					Y: y * levelMap.TileHeight,
					W: levelMap.TileWidth,
					H: levelMap.TileHeight,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		rect := &ObjectRect{X: int(o.X), Y: int(o.Y), W: int(o.Width), H: int(o.Height)}
		switch og.Name {
		case goalGroupName:
			data.Goal = rect
		case spawnGroupName:
			data.Spawn = rect
		}
	}

	return data, nil
}

// LoadAllLevels parses every .tmx under dir, returning levels keyed by stem
// name plus the sorted name list that defines level order.
func LoadAllLevels(fsys fs.FS, dir string) (map[string]*LevelData, []string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read level dir %s: %w", dir, err)
	}

	levels := make(map[string]*LevelData)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmx") {
			continue
		}
		data, err := LoadLevel(fsys, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}
	sort.Strings(names)

	return levels, names, nil
}
