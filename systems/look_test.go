package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
)

func neutralSettings() *components.SettingsData {
	return &components.SettingsData{
		SensitivityIndex: cfg.Settings.DefaultSensitivityIndex,
	}
}

func TestLookClaimsFreePointer(t *testing.T) {
	look := &components.LookData{}
	player := &components.PlayerData{Yaw: 1}

	down := pointer{id: 4, pos: gamemath.Vec2{X: 400, Y: 100}, justDown: true}
	routeLookPointers(look, player, neutralSettings(), []pointer{down}, nil)

	require.True(t, look.Dragging)
	assert.Equal(t, components.PointerID(4), look.Pointer)
	assert.Equal(t, down.pos, look.Last)
	// Claiming alone must not rotate the camera
	assert.Equal(t, 1.0, player.Yaw)
	assert.Equal(t, 0.0, player.Pitch)
}

func TestLookSkipsPointerOverHUDControl(t *testing.T) {
	look := &components.LookData{}
	player := &components.PlayerData{}
	exclusions := []hudCircle{{center: gamemath.Vec2{X: 68, Y: 292}, radius: 64}}

	down := pointer{id: 4, pos: gamemath.Vec2{X: 70, Y: 290}, justDown: true}
	routeLookPointers(look, player, neutralSettings(), []pointer{down}, exclusions)

	assert.False(t, look.Dragging)
}

func TestLookIgnoresTapOnFlashlightButton(t *testing.T) {
	// A tap that toggles the flashlight must not also start a look drag
	look := &components.LookData{}
	player := &components.PlayerData{}
	exclusions := []hudCircle{{
		center: flashlightButtonCenter(),
		radius: cfg.HUD.ButtonRadius,
	}}

	down := pointer{id: 4, pos: flashlightButtonCenter(), justDown: true}
	routeLookPointers(look, player, neutralSettings(), []pointer{down}, exclusions)

	assert.False(t, look.Dragging)
	assert.Equal(t, 0.0, player.Yaw)
}

func TestLookDragTurnsCamera(t *testing.T) {
	look := &components.LookData{
		Dragging: true,
		Pointer:  4,
		Last:     gamemath.Vec2{X: 400, Y: 100},
	}
	player := &components.PlayerData{Yaw: 1}
	settings := neutralSettings()
	sens := lookSensitivity(settings)

	moved := pointer{id: 4, pos: gamemath.Vec2{X: 460, Y: 100}}
	routeLookPointers(look, player, settings, []pointer{moved}, nil)

	assert.InDelta(t, 1+60*sens, player.Yaw, 1e-9)
	assert.Equal(t, moved.pos, look.Last)
}

func TestLookDragTiltsCamera(t *testing.T) {
	tests := []struct {
		name      string
		invert    bool
		dragY     float64
		wantPitch func(t *testing.T, pitch, sens float64)
	}{
		{
			name:  "drag down looks down",
			dragY: 50,
			wantPitch: func(t *testing.T, pitch, sens float64) {
				assert.InDelta(t, -50*sens, pitch, 1e-9)
			},
		},
		{
			name:  "drag up looks up",
			dragY: -50,
			wantPitch: func(t *testing.T, pitch, sens float64) {
				assert.InDelta(t, 50*sens, pitch, 1e-9)
			},
		},
		{
			name:   "inverted drag down looks up",
			invert: true,
			dragY:  50,
			wantPitch: func(t *testing.T, pitch, sens float64) {
				assert.InDelta(t, 50*sens, pitch, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look := &components.LookData{
				Dragging: true,
				Pointer:  4,
				Last:     gamemath.Vec2{X: 300, Y: 150},
			}
			player := &components.PlayerData{}
			settings := neutralSettings()
			settings.InvertLookY = tt.invert

			moved := pointer{id: 4, pos: gamemath.Vec2{X: 300, Y: 150 + tt.dragY}}
			routeLookPointers(look, player, settings, []pointer{moved}, nil)

			tt.wantPitch(t, player.Pitch, lookSensitivity(settings))
		})
	}
}

func TestLookPitchStaysClamped(t *testing.T) {
	look := &components.LookData{Dragging: true, Pointer: 4}
	player := &components.PlayerData{}
	settings := neutralSettings()

	// Keep dragging far past the limit in both directions
	pos := gamemath.Vec2{X: 300, Y: 150}
	look.Last = pos
	for i := 0; i < 50; i++ {
		pos.Y += 200
		routeLookPointers(look, player, settings, []pointer{{id: 4, pos: pos}}, nil)
	}
	assert.InDelta(t, -cfg.Player.PitchLimit, player.Pitch, 1e-9)

	for i := 0; i < 100; i++ {
		pos.Y -= 200
		routeLookPointers(look, player, settings, []pointer{{id: 4, pos: pos}}, nil)
	}
	assert.InDelta(t, cfg.Player.PitchLimit, player.Pitch, 1e-9)
}

func TestLookYawWrapsFullTurns(t *testing.T) {
	look := &components.LookData{Dragging: true, Pointer: 4}
	player := &components.PlayerData{}
	settings := neutralSettings()

	pos := gamemath.Vec2{}
	look.Last = pos
	for i := 0; i < 200; i++ {
		pos.X -= 500
		routeLookPointers(look, player, settings, []pointer{{id: 4, pos: pos}}, nil)
		assert.GreaterOrEqual(t, player.Yaw, 0.0)
		assert.Less(t, player.Yaw, 2*math.Pi)
	}
}

func TestLookReleaseStopsRotation(t *testing.T) {
	look := &components.LookData{
		Dragging: true,
		Pointer:  4,
		Last:     gamemath.Vec2{X: 300, Y: 150},
	}
	player := &components.PlayerData{Yaw: 2}

	// Pointer lifted
	routeLookPointers(look, player, neutralSettings(), nil, nil)
	require.False(t, look.Dragging)

	// Same ID held down elsewhere later must not rotate until claimed again
	held := pointer{id: 4, pos: gamemath.Vec2{X: 900, Y: 900}}
	routeLookPointers(look, player, neutralSettings(), []pointer{held}, nil)

	assert.False(t, look.Dragging)
	assert.Equal(t, 2.0, player.Yaw)
}

func TestLookSensitivitySteps(t *testing.T) {
	for i, mult := range cfg.Settings.SensitivitySteps {
		s := &components.SettingsData{SensitivityIndex: i}
		assert.InDelta(t, cfg.Player.LookSensitivity*mult, lookSensitivity(s), 1e-12)
	}

	// Out-of-range index falls back to the default step
	def := cfg.Settings.SensitivitySteps[cfg.Settings.DefaultSensitivityIndex]
	assert.InDelta(t, cfg.Player.LookSensitivity*def, lookSensitivity(&components.SettingsData{SensitivityIndex: -1}), 1e-12)
	assert.InDelta(t, cfg.Player.LookSensitivity*def, lookSensitivity(&components.SettingsData{SensitivityIndex: 99}), 1e-12)
}
