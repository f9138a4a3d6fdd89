package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/systems/factory"
)

func TestOverlayFadeInCompletes(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateOverlay(e)
	overlay := components.Overlay.Get(entry)
	getOrCreateTime(e).Delta = 0.1

	require.InDelta(t, 1.0, float64(overlay.FadeAlpha), 1e-6)

	// Halfway through the fade the screen is partially revealed
	steps := int(float64(cfg.Overlay.FadeInLength) / 0.1)
	for i := 0; i < steps/2; i++ {
		UpdateOverlay(e)
	}
	assert.Greater(t, float64(overlay.FadeAlpha), 0.0)
	assert.Less(t, float64(overlay.FadeAlpha), 1.0)

	for i := 0; i < steps; i++ {
		UpdateOverlay(e)
	}
	assert.Nil(t, overlay.FadeIn)
	assert.Zero(t, overlay.FadeAlpha)
}

func TestOverlayHintHoldsThenFades(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateOverlay(e)
	overlay := components.Overlay.Get(entry)
	getOrCreateTime(e).Delta = 0.1

	// During the hold the hint stays fully visible
	holdSteps := int(float64(cfg.Overlay.HintHold) / 0.1)
	for i := 0; i < holdSteps-1; i++ {
		UpdateOverlay(e)
	}
	assert.False(t, overlay.HintDone)
	assert.InDelta(t, 1.0, float64(overlay.HintAlpha), 1e-6)

	// Then it fades out and never comes back
	fadeSteps := int(float64(cfg.Overlay.HintFade)/0.1) + 6
	for i := 0; i < fadeSteps; i++ {
		UpdateOverlay(e)
	}
	assert.True(t, overlay.HintDone)
	assert.LessOrEqual(t, float64(overlay.HintAlpha), 0.01)

	// Further updates keep it done
	UpdateOverlay(e)
	assert.True(t, overlay.HintDone)
}

func TestOverlayAlphaMonotonicallyReveals(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateOverlay(e)
	overlay := components.Overlay.Get(entry)
	getOrCreateTime(e).Delta = 0.05

	prev := overlay.FadeAlpha
	for i := 0; i < 100; i++ {
		UpdateOverlay(e)
		assert.LessOrEqual(t, overlay.FadeAlpha, prev)
		prev = overlay.FadeAlpha
	}
}

func TestScaleAlpha(t *testing.T) {
	c := scaleAlpha(cfg.White, 0.5)
	assert.InDelta(t, float64(cfg.White.R)/2, float64(c.R), 1.0)
	assert.InDelta(t, float64(cfg.White.A)/2, float64(c.A), 1.0)

	full := scaleAlpha(cfg.White, 1)
	assert.Equal(t, cfg.White, full)

	gone := scaleAlpha(cfg.White, 0)
	assert.Zero(t, gone.R)
	assert.Zero(t, gone.A)
}
