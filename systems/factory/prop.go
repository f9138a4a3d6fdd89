package factory

import (
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateProps spawns a billboard entity for every prop the room places.
func CreateProps(ecs *ecs.ECS, room *leveldata.Room) {
	for _, spawn := range room.Props {
		prop := archetypes.Prop.Spawn(ecs)
		components.Prop.SetValue(prop, components.PropData{
			Position: gamemath.Vec2{X: spawn.X, Y: spawn.Y},
			Kind:     spawn.Kind,
		})
	}
}
