package systems

import (
	"math"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates the joystick move vector into the player
// position. The vector is relative to the camera: Y along facing, X strafing.
func UpdateMovement(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	joystickEntry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	move := components.Joystick.Get(joystickEntry).Value

	dt := getOrCreateTime(ecs).Delta
	player.Position = integrate(player.Position, player.Yaw, move, cfg.Player.MoveSpeed, dt)

	updateHeadBob(player, move, dt, GetOrCreateSettings(ecs))
}

// integrate advances a position by a camera-relative move vector.
// There is no collision; the room is walked through freely.
func integrate(pos gamemath.Vec2, yaw float64, move gamemath.Vec2, speed, dt float64) gamemath.Vec2 {
	forward := gamemath.Forward(yaw)
	right := gamemath.Right(yaw)
	pos = pos.Add(forward.Scale(move.Y * speed * dt))
	pos = pos.Add(right.Scale(move.X * speed * dt))
	return pos
}

// updateHeadBob drives the cosmetic vertical bob. It only ever touches
// BobPhase/BobOffset, never Position.
func updateHeadBob(player *components.PlayerData, move gamemath.Vec2, dt float64, settings *components.SettingsData) {
	speed := move.Length()
	if !settings.HeadBob || speed < 0.01 {
		// Ease the offset back to level when standing still
		player.BobOffset *= math.Pow(0.001, dt)
		if math.Abs(player.BobOffset) < 0.05 {
			player.BobOffset = 0
		}
		return
	}

	player.BobPhase += dt * cfg.Player.BobFrequency * 2 * math.Pi * speed
	if player.BobPhase > 2*math.Pi {
		player.BobPhase -= 2 * math.Pi
	}
	player.BobOffset = math.Sin(player.BobPhase) * cfg.Player.BobAmplitude * speed
}
