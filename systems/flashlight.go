package systems

import (
	"math/rand"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var flickerRng = rand.New(rand.NewSource(97))

// UpdateFlashlight toggles the light from the F action or a tap on the HUD
// button, and advances the flicker tween while the light is on.
func UpdateFlashlight(ecs *ecs.ECS) {
	entry, ok := components.Flashlight.First(ecs.World)
	if !ok {
		return
	}
	flashlight := components.Flashlight.Get(entry)

	toggle := GetAction(getOrCreateInput(ecs), cfg.ActionFlashlight).JustPressed

	center := flashlightButtonCenter()
	for _, p := range collectPointers() {
		if p.justDown && p.pos.Sub(center).Length() <= cfg.HUD.ButtonRadius {
			toggle = true
			break
		}
	}

	if toggle {
		flashlight.On = !flashlight.On
		if flashlight.On {
			flashlight.Intensity = 1
			flashlight.Flicker = newFlickerSequence()
		}
	}

	if !flashlight.On {
		return
	}

	dt := getOrCreateTime(ecs).Delta
	value, _, done := flashlight.Flicker.Update(float32(dt))
	flashlight.Intensity = float64(value)
	if done {
		flashlight.Flicker = newFlickerSequence()
	}
}

// flashlightButtonCenter is the HUD toggle position in the lower-right corner.
func flashlightButtonCenter() gamemath.Vec2 {
	return gamemath.Vec2{
		X: float64(cfg.C.Width) - cfg.HUD.ButtonMargin,
		Y: float64(cfg.C.Height) - cfg.HUD.ButtonMargin,
	}
}

// newFlickerSequence builds a short run of brightness wobbles, with an
// occasional deep dip, ending back at full so rebuilds stay seamless.
func newFlickerSequence() *gween.Sequence {
	seq := gween.NewSequence()

	last := float32(1)
	steps := 4 + flickerRng.Intn(4)
	for i := 0; i < steps; i++ {
		target := flickerRandRange(cfg.Flashlight.FlickerMin, cfg.Flashlight.FlickerMax)
		duration := flickerRandRange(0.06, 0.3)
		seq.Add(gween.New(last, target, duration, ease.Linear))
		last = target
	}

	if flickerRng.Float64() < cfg.Flashlight.DipChance {
		dip := float32(cfg.Flashlight.DipIntensity)
		seq.Add(
			gween.New(last, dip, 0.05, ease.Linear),
			gween.New(dip, 1, 0.25, ease.OutQuad),
		)
	} else {
		seq.Add(gween.New(last, 1, 0.15, ease.Linear))
	}

	return seq
}

func flickerRandRange(min, max float64) float32 {
	return float32(min + flickerRng.Float64()*(max-min))
}
