package systems

import (
	"time"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameDelta caps the per-frame time step so a stalled frame (window
// drag, debugger pause) cannot teleport the player.
const maxFrameDelta = 0.1

// UpdateClock advances the frame clock. Must run before any system that
// integrates over time.
func UpdateClock(e *ecs.ECS) {
	t := getOrCreateTime(e)
	now := time.Now()

	if t.LastTick.IsZero() {
		t.LastTick = now
		t.Delta = 0
		return
	}

	dt := now.Sub(t.LastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	t.Delta = dt
	t.LastTick = now
}

// getOrCreateTime returns the singleton Time component, creating if needed
func getOrCreateTime(e *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Time))
	}
	return components.Time.Get(entry)
}
