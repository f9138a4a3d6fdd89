package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX room file. It takes an fs.FS so callers can pass
// embed.FS (the shipped room) or any other filesystem in tests.
//
// Expected map structure:
//   - a tile layer named "walls" whose tile IDs become wall texture
//     indices (tile ID 0 -> texture 1, and so on),
//   - an object group "Props" with point objects classed "crate",
//     "barrel", ...,
//   - an object group "PlayerSpawn" with a single point object carrying
//     a float "yaw" property in radians.
func Load(fsys fs.FS, tmxPath string) (*Room, error) {
	roomMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	room := &Room{
		Name:   tmxPath,
		Width:  roomMap.Width,
		Height: roomMap.Height,
		Walls:  make([]int, roomMap.Width*roomMap.Height),
	}

	wallsFound := false
	for _, layer := range roomMap.Layers {
		if layer.Name != "walls" {
			continue
		}
		wallsFound = true
		for i, tile := range layer.Tiles {
			if tile.IsNil() {
				continue
			}
			room.Walls[i] = int(tile.ID) + 1
		}
		break
	}
	if !wallsFound {
		return nil, fmt.Errorf("room %s: no \"walls\" tile layer", tmxPath)
	}

	tileW := float64(roomMap.TileWidth)
	tileH := float64(roomMap.TileHeight)
	spawnFound := false
	for _, og := range roomMap.ObjectGroups {
		switch og.Name {
		case "Props":
			for _, o := range og.Objects {
				// Tiled saves an object's class in the type= attribute
				if o.Type == "" {
					continue
				}
				room.Props = append(room.Props, PropSpawn{
					X:    o.X / tileW,
					Y:    o.Y / tileH,
					Kind: o.Type,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				room.Spawn = PlayerSpawn{
					X:   o.X / tileW,
					Y:   o.Y / tileH,
					Yaw: o.Properties.GetFloat("yaw"),
				}
				spawnFound = true
				break
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("room %s: no PlayerSpawn object", tmxPath)
	}

	return room, nil
}
