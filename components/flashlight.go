package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashlightData is the player's light. On flips from the HUD button or
// the flashlight action. Intensity is the flicker multiplier fed to the
// lighting shader; the flashlight system keeps it inside (0, 1] while
// the light is on.
type FlashlightData struct {
	On        bool
	Intensity float64

	// Flicker wanders between random brightness targets; rebuilt by the
	// flashlight system each time the sequence completes.
	Flicker *gween.Sequence
}

var Flashlight = donburi.NewComponentType[FlashlightData]()
