package factory

import (
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the room's spawn point, facing the
// spawn yaw, standing level.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.PlayerSpawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Position: gamemath.Vec2{X: spawn.X, Y: spawn.Y},
		Yaw:      gamemath.WrapAngle(spawn.Yaw),
		Pitch:    0,
	})

	return player
}
