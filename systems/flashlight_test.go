package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
)

func TestFlickerSequenceStaysInBounds(t *testing.T) {
	for run := 0; run < 50; run++ {
		seq := newFlickerSequence()

		// Every sequence starts at full brightness
		first, _, done := seq.Update(0.001)
		require.False(t, done)
		assert.Greater(t, float64(first), 0.95)

		final := float64(first)
		for steps := 0; !done; steps++ {
			require.Less(t, steps, 10000, "sequence never completed")

			var v float32
			v, _, done = seq.Update(0.01)
			final = float64(v)

			assert.LessOrEqual(t, final, 1.001)
			assert.GreaterOrEqual(t, final, cfg.Flashlight.DipIntensity-0.001)
		}

		// And lands back at full brightness so the next one picks up seamlessly
		assert.InDelta(t, 1.0, final, 1e-3)
	}
}

func TestFlickerSequenceNeverBrightens(t *testing.T) {
	// The wobble dims below 1, it must not overshoot above the steady level
	for run := 0; run < 20; run++ {
		seq := newFlickerSequence()
		done := false
		for steps := 0; !done && steps < 10000; steps++ {
			var v float32
			v, _, done = seq.Update(0.016)
			assert.LessOrEqual(t, float64(v), 1.001)
		}
		require.True(t, done)
	}
}

func TestFlashlightButtonCenterSitsInLowerRightCorner(t *testing.T) {
	c := flashlightButtonCenter()

	assert.Greater(t, c.X, float64(cfg.C.Width)/2)
	assert.Greater(t, c.Y, float64(cfg.C.Height)/2)
	assert.Less(t, c.X+cfg.HUD.ButtonRadius, float64(cfg.C.Width))
	assert.Less(t, c.Y+cfg.HUD.ButtonRadius, float64(cfg.C.Height))
}
