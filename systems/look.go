package systems

import (
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook turns pointer drags outside the HUD controls into camera
// rotation. The joystick capture circle and flashlight button are excluded
// so look drags never fight those controls for a pointer.
func UpdateLook(ecs *ecs.ECS) {
	lookEntry, ok := components.Look.First(ecs.World)
	if !ok {
		return
	}
	look := components.Look.Get(lookEntry)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	settings := GetOrCreateSettings(ecs)

	var exclusions []hudCircle
	if joystickEntry, ok := components.Joystick.First(ecs.World); ok {
		j := components.Joystick.Get(joystickEntry)
		exclusions = append(exclusions, hudCircle{
			center: j.Center,
			radius: j.Radius * cfg.Joystick.CaptureScale,
		})
	}
	exclusions = append(exclusions, hudCircle{
		center: flashlightButtonCenter(),
		radius: cfg.HUD.ButtonRadius,
	})

	routeLookPointers(look, player, settings, collectPointers(), exclusions)
}

// hudCircle is a screen region reserved for an on-screen control.
type hudCircle struct {
	center gamemath.Vec2
	radius float64
}

func (c hudCircle) contains(p gamemath.Vec2) bool {
	return p.Sub(c.center).Length() <= c.radius
}

// routeLookPointers claims a free pointer for the look drag and applies
// frame-to-frame displacement to the camera while it holds.
func routeLookPointers(look *components.LookData, player *components.PlayerData, settings *components.SettingsData, ps []pointer, exclusions []hudCircle) {
	if look.Dragging {
		p := findPointer(ps, look.Pointer)
		if p == nil {
			look.Dragging = false
			return
		}
		applyLookDrag(player, settings, p.pos.Sub(look.Last))
		look.Last = p.pos
		return
	}

	for i := range ps {
		if !ps[i].justDown {
			continue
		}
		if insideAny(ps[i].pos, exclusions) {
			continue
		}
		look.Dragging = true
		look.Pointer = ps[i].id
		look.Last = ps[i].pos
		return
	}
}

func insideAny(p gamemath.Vec2, circles []hudCircle) bool {
	for _, c := range circles {
		if c.contains(p) {
			return true
		}
	}
	return false
}

// applyLookDrag converts a screen-space displacement into yaw and pitch.
// Horizontal drag turns, vertical drag tilts, pitch clamped to the limit.
func applyLookDrag(player *components.PlayerData, settings *components.SettingsData, delta gamemath.Vec2) {
	sens := lookSensitivity(settings)
	player.Yaw = gamemath.WrapAngle(player.Yaw + delta.X*sens)

	dy := delta.Y * sens
	if settings.InvertLookY {
		dy = -dy
	}
	player.Pitch = gamemath.Clamp(player.Pitch-dy, -cfg.Player.PitchLimit, cfg.Player.PitchLimit)
}

// lookSensitivity scales the base sensitivity by the settings multiplier.
func lookSensitivity(settings *components.SettingsData) float64 {
	idx := settings.SensitivityIndex
	if idx < 0 || idx >= len(cfg.Settings.SensitivitySteps) {
		idx = cfg.Settings.DefaultSensitivityIndex
	}
	return cfg.Player.LookSensitivity * cfg.Settings.SensitivitySteps[idx]
}
