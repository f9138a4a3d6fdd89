package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the on-screen controls: the movement stick in the
// bottom-left corner and the flashlight button in the bottom-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawJoystick(ecs, screen)
	drawFlashlightButton(ecs, screen)
}

func drawJoystick(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	joystick := components.Joystick.Get(entry)

	cx, cy := float32(joystick.Center.X), float32(joystick.Center.Y)
	radius := float32(joystick.Radius)

	vector.DrawFilledCircle(screen, cx, cy, radius, cfg.HUD.StickBase, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1.5, cfg.HUD.StickRing, true)

	knobX := cx + float32(joystick.Knob.X)
	knobY := cy + float32(joystick.Knob.Y)
	vector.DrawFilledCircle(screen, knobX, knobY, float32(cfg.Joystick.KnobRadius), cfg.HUD.StickKnob, true)
}

func drawFlashlightButton(ecs *ecs.ECS, screen *ebiten.Image) {
	center := flashlightButtonCenter()
	cx, cy := float32(center.X), float32(center.Y)
	radius := float32(cfg.HUD.ButtonRadius)

	fill := cfg.HUD.ButtonIdle
	if entry, ok := components.Flashlight.First(ecs.World); ok {
		if components.Flashlight.Get(entry).On {
			fill = cfg.HUD.ButtonLit
		}
	}

	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1.5, cfg.HUD.StickRing, true)

	// Torch glyph: a short angled body with a widening head
	vector.StrokeLine(screen, cx-6, cy+7, cx+3, cy-2, 3, cfg.HUD.ButtonIcon, true)
	vector.StrokeLine(screen, cx+3, cy-2, cx+8, cy-7, 6, cfg.HUD.ButtonIcon, true)
}
