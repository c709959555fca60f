package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const solidLayer = "wg-tiles"

// LoadRange parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadRange(fsys fs.FS, tmxPath string) (*Range, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Range{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles, when the map has a painted collision layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != solidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				data.Solids = append(data.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Solids = append(data.Solids, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Targets":
			for _, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("target-%d", len(data.Targets)+1)
				}
				data.Targets = append(data.Targets, TargetSpawn{
					Name:          name,
					X:             o.X,
					Y:             o.Y,
					Health:        o.Properties.GetInt("health"),
					RespawnFrames: o.Properties.GetInt("respawnFrames"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("range %s: no PlayerSpawn objects", tmxPath)
	}
	return data, nil
}
