package components

import (
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData holds the first-person camera state. Position is in world
// cells (1 cell = 1 meter) and is mutated once per frame by the movement
// integrator. Yaw and Pitch are owned by the look system; movement reads
// yaw only.
type PlayerData struct {
	Position gamemath.Vec2
	Yaw      float64 // radians, kept in [0, 2*pi)
	Pitch    float64 // radians, clamped to +/- config.Player.PitchLimit

	// Head bob shifts the rendered horizon only, never Position.
	BobPhase  float64
	BobOffset float64 // pixels
}

var Player = donburi.NewComponentType[PlayerData]()
