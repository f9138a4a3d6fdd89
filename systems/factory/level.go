package factory

import (
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/assets"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
	"github.com/pr-poehali-dev/realistic-horror-game/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel parses the embedded room and spawns the level entity.
// The room file ships inside the binary, so a parse failure means a
// broken build and aborts.
func CreateLevel(ecs *ecs.ECS) (*donburi.Entry, *leveldata.Room) {
	room, err := assets.LoadRoom()
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("could not load room")
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Room: room})

	logging.Logger.Info().
		Str("room", room.Name).
		Int("width", room.Width).
		Int("height", room.Height).
		Int("props", len(room.Props)).
		Msg("room loaded")

	return level, room
}
