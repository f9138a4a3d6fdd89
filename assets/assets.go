package assets

import (
	"embed"

	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// RoomPath is the shipped room file inside the embedded filesystem.
const RoomPath = "levels/room.tmx"

// LoadRoom parses the embedded room. Called once when the room scene
// configures itself.
func LoadRoom() (*leveldata.Room, error) {
	return leveldata.Load(assetFS, RoomPath)
}
