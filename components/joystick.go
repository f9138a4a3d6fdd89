package components

import (
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi"
)

// JoystickMode is the drag state of the on-screen stick.
type JoystickMode int

const (
	JoystickIdle JoystickMode = iota
	JoystickDragging
)

// JoystickData is the on-screen movement stick. Value is the MoveVector:
// components in [-1, 1], magnitude <= 1, recomputed every frame and reset
// to zero the moment the tracked pointer releases.
type JoystickData struct {
	Center gamemath.Vec2 // screen pixels
	Radius float64       // base circle radius, pixels

	Mode    JoystickMode
	Pointer PointerID // tracked pointer while dragging

	Knob  gamemath.Vec2 // clamped displacement in pixels, for HUD drawing
	Value gamemath.Vec2 // the MoveVector (y positive = forward)
}

var Joystick = donburi.NewComponentType[JoystickData]()
