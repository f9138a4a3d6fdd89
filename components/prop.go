package components

import (
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi"
)

// PropData is a billboard decoration in the room (crate, barrel, ...).
// Position is in world cells; Kind selects the generated texture.
type PropData struct {
	Position gamemath.Vec2
	Kind     string
}

var Prop = donburi.NewComponentType[PropData]()
