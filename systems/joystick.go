package systems

import (
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJoystick drives the on-screen stick from touch/mouse pointers and
// falls back to keyboard directional actions when no pointer holds it.
func UpdateJoystick(ecs *ecs.ECS) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	joystick := components.Joystick.Get(entry)

	routeJoystickPointers(joystick, collectPointers())

	if joystick.Mode == components.JoystickIdle {
		applyKeyboardFallback(joystick, getOrCreateInput(ecs))
	}
}

// routeJoystickPointers claims, tracks and releases the dragging pointer.
// A new drag starts when a pointer goes down inside the capture circle.
func routeJoystickPointers(j *components.JoystickData, ps []pointer) {
	if j.Mode == components.JoystickDragging {
		p := findPointer(ps, j.Pointer)
		if p == nil {
			releaseJoystick(j)
			return
		}
		applyDrag(j, p.pos)
		return
	}

	capture := j.Radius * cfg.Joystick.CaptureScale
	for i := range ps {
		if !ps[i].justDown {
			continue
		}
		if ps[i].pos.Sub(j.Center).Length() > capture {
			continue
		}
		j.Mode = components.JoystickDragging
		j.Pointer = ps[i].id
		applyDrag(j, ps[i].pos)
		return
	}
}

// applyDrag maps a pointer position to knob displacement and movement value.
// Displacement is clamped to the stick radius; Y is flipped so up is positive.
func applyDrag(j *components.JoystickData, pos gamemath.Vec2) {
	d := gamemath.ClampToRadius(pos.Sub(j.Center), j.Radius)
	j.Knob = d
	j.Value = gamemath.Vec2{X: d.X / j.Radius, Y: -d.Y / j.Radius}
}

// releaseJoystick snaps the knob back and zeroes the value immediately.
func releaseJoystick(j *components.JoystickData) {
	j.Mode = components.JoystickIdle
	j.Knob = gamemath.Vec2{}
	j.Value = gamemath.Vec2{}
}

// applyKeyboardFallback feeds WASD/arrow actions through the same clamp as
// the stick, so diagonals never exceed unit magnitude.
func applyKeyboardFallback(j *components.JoystickData, input *components.InputData) {
	var raw gamemath.Vec2
	if input.Current[cfg.ActionMoveForward] {
		raw.Y++
	}
	if input.Current[cfg.ActionMoveBack] {
		raw.Y--
	}
	if input.Current[cfg.ActionMoveLeft] {
		raw.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		raw.X++
	}
	j.Value = gamemath.ClampToRadius(raw, 1)
	j.Knob = gamemath.Vec2{X: j.Value.X * j.Radius, Y: -j.Value.Y * j.Radius}
}
