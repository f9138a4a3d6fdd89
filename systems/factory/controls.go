package factory

import (
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateJoystick anchors the movement stick in the bottom-left corner.
func CreateJoystick(ecs *ecs.ECS) *donburi.Entry {
	joystick := archetypes.Joystick.Spawn(ecs)
	components.Joystick.SetValue(joystick, components.JoystickData{
		Center: gamemath.Vec2{
			X: cfg.Joystick.Margin,
			Y: float64(cfg.C.Height) - cfg.Joystick.Margin,
		},
		Radius: cfg.Joystick.Radius,
		Mode:   components.JoystickIdle,
	})
	return joystick
}

// CreateFlashlight spawns the flashlight, off until toggled.
func CreateFlashlight(ecs *ecs.ECS) *donburi.Entry {
	flashlight := archetypes.Flashlight.Spawn(ecs)
	components.Flashlight.SetValue(flashlight, components.FlashlightData{
		On:        false,
		Intensity: 1,
	})
	return flashlight
}

// CreateLook spawns the look-drag tracker.
func CreateLook(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Look.Spawn(ecs)
}
