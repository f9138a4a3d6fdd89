package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimeData is the per-frame clock. Delta is the wall-clock seconds since
// the previous update, clamped by the clock system so a stalled frame
// cannot teleport the player.
type TimeData struct {
	LastTick time.Time
	Delta    float64
}

var Time = donburi.NewComponentType[TimeData]()
