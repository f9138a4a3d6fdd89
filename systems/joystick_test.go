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

func newTestJoystick() *components.JoystickData {
	return &components.JoystickData{
		Center: gamemath.Vec2{X: 100, Y: 300},
		Radius: 40,
		Mode:   components.JoystickIdle,
	}
}

func TestJoystickClaimInsideCaptureCircle(t *testing.T) {
	j := newTestJoystick()
	// Outside the drawn base but inside the wider capture circle
	down := pointer{id: 7, pos: j.Center.Add(gamemath.Vec2{X: 50}), justDown: true}

	routeJoystickPointers(j, []pointer{down})

	require.Equal(t, components.JoystickDragging, j.Mode)
	assert.Equal(t, components.PointerID(7), j.Pointer)
	assert.InDelta(t, 1.0, j.Value.X, 1e-9)
	assert.InDelta(t, 0.0, j.Value.Y, 1e-9)
}

func TestJoystickIgnoresPointerOutsideCapture(t *testing.T) {
	j := newTestJoystick()
	outside := j.Radius*cfg.Joystick.CaptureScale + 1
	down := pointer{id: 7, pos: j.Center.Add(gamemath.Vec2{X: outside}), justDown: true}

	routeJoystickPointers(j, []pointer{down})

	assert.Equal(t, components.JoystickIdle, j.Mode)
	assert.True(t, j.Value.IsZero())
}

func TestJoystickIgnoresHeldPointer(t *testing.T) {
	// A pointer already held down (owned by a look drag) must not claim the
	// stick when it passes over it
	j := newTestJoystick()
	held := pointer{id: 7, pos: j.Center, justDown: false}

	routeJoystickPointers(j, []pointer{held})

	assert.Equal(t, components.JoystickIdle, j.Mode)
	assert.True(t, j.Value.IsZero())
}

func TestJoystickDragValue(t *testing.T) {
	tests := []struct {
		name   string
		offset gamemath.Vec2
		want   gamemath.Vec2
	}{
		{"full right", gamemath.Vec2{X: 40}, gamemath.Vec2{X: 1}},
		{"double radius clamps to full right", gamemath.Vec2{X: 80}, gamemath.Vec2{X: 1}},
		{"full up", gamemath.Vec2{Y: -40}, gamemath.Vec2{Y: 1}},
		{"full down", gamemath.Vec2{Y: 40}, gamemath.Vec2{Y: -1}},
		{"half left", gamemath.Vec2{X: -20}, gamemath.Vec2{X: -0.5}},
		{"diagonal inside", gamemath.Vec2{X: 24, Y: -24}, gamemath.Vec2{X: 0.6, Y: 0.6}},
		{"center", gamemath.Vec2{}, gamemath.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newTestJoystick()
			j.Mode = components.JoystickDragging
			j.Pointer = 3

			p := pointer{id: 3, pos: j.Center.Add(tt.offset)}
			routeJoystickPointers(j, []pointer{p})

			assert.InDelta(t, tt.want.X, j.Value.X, 1e-9)
			assert.InDelta(t, tt.want.Y, j.Value.Y, 1e-9)
		})
	}
}

func TestJoystickDragBeyondRadiusClampsToUnit(t *testing.T) {
	j := newTestJoystick()
	j.Mode = components.JoystickDragging
	j.Pointer = 3

	p := pointer{id: 3, pos: j.Center.Add(gamemath.Vec2{X: 200, Y: -150})}
	routeJoystickPointers(j, []pointer{p})

	assert.InDelta(t, 1.0, j.Value.Length(), 1e-9)
	assert.InDelta(t, 40.0, j.Knob.Length(), 1e-9)
	// Direction preserved: offset is 4:3, so the value is 0.8 right, 0.6 up
	assert.InDelta(t, 0.8, j.Value.X, 1e-9)
	assert.InDelta(t, 0.6, j.Value.Y, 1e-9)
}

func TestJoystickReleaseZeroesImmediately(t *testing.T) {
	j := newTestJoystick()
	j.Mode = components.JoystickDragging
	j.Pointer = 3
	j.Value = gamemath.Vec2{X: 1}
	j.Knob = gamemath.Vec2{X: 40}

	// Pointer lifted: it is simply absent this frame
	routeJoystickPointers(j, nil)

	assert.Equal(t, components.JoystickIdle, j.Mode)
	assert.True(t, j.Value.IsZero())
	assert.True(t, j.Knob.IsZero())
}

func TestJoystickTracksOnlyItsPointer(t *testing.T) {
	j := newTestJoystick()
	j.Mode = components.JoystickDragging
	j.Pointer = 3

	own := pointer{id: 3, pos: j.Center.Add(gamemath.Vec2{X: 20})}
	other := pointer{id: 9, pos: j.Center.Add(gamemath.Vec2{Y: 40}), justDown: true}
	routeJoystickPointers(j, []pointer{other, own})

	assert.Equal(t, components.PointerID(3), j.Pointer)
	assert.InDelta(t, 0.5, j.Value.X, 1e-9)
	assert.InDelta(t, 0.0, j.Value.Y, 1e-9)
}

func TestKeyboardFallback(t *testing.T) {
	press := func(actions ...cfg.ActionID) *components.InputData {
		input := &components.InputData{}
		for _, a := range actions {
			input.Current[a] = true
		}
		return input
	}

	tests := []struct {
		name  string
		input *components.InputData
		want  gamemath.Vec2
	}{
		{"forward", press(cfg.ActionMoveForward), gamemath.Vec2{Y: 1}},
		{"back", press(cfg.ActionMoveBack), gamemath.Vec2{Y: -1}},
		{"left", press(cfg.ActionMoveLeft), gamemath.Vec2{X: -1}},
		{"right", press(cfg.ActionMoveRight), gamemath.Vec2{X: 1}},
		{
			"diagonal is unit length",
			press(cfg.ActionMoveForward, cfg.ActionMoveRight),
			gamemath.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
		},
		{
			"opposite keys cancel",
			press(cfg.ActionMoveForward, cfg.ActionMoveBack),
			gamemath.Vec2{},
		},
		{"nothing pressed", press(), gamemath.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newTestJoystick()
			applyKeyboardFallback(j, tt.input)

			assert.InDelta(t, tt.want.X, j.Value.X, 1e-9)
			assert.InDelta(t, tt.want.Y, j.Value.Y, 1e-9)
			assert.LessOrEqual(t, j.Value.Length(), 1.0+1e-9)
		})
	}
}
