package components

import (
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi"
)

// LookData tracks the active look drag. A pointer pressed outside the
// joystick and flashlight-button capture circles rotates the camera
// until it releases.
type LookData struct {
	Dragging bool
	Pointer  PointerID
	Last     gamemath.Vec2 // pointer position on the previous frame, pixels
}

var Look = donburi.NewComponentType[LookData]()
