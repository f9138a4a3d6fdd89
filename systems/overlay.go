package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay advances the scene fade-in and the instructional hint,
// which holds for a few seconds and then fades away for good.
func UpdateOverlay(ecs *ecs.ECS) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	dt := float32(getOrCreateTime(ecs).Delta)

	if overlay.FadeIn != nil {
		value, finished := overlay.FadeIn.Update(dt)
		overlay.FadeAlpha = value
		if finished {
			overlay.FadeIn = nil
			overlay.FadeAlpha = 0
		}
	}

	if overlay.HintDone {
		return
	}
	if overlay.HintHold > 0 {
		overlay.HintHold -= dt
		return
	}
	if overlay.HintFade != nil {
		value, finished := overlay.HintFade.Update(dt)
		overlay.HintAlpha = value
		if finished {
			overlay.HintDone = true
		}
	}
}

// DrawOverlay renders the hint text and the fade-from-black on top of the room.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if !overlay.HintDone && overlay.HintAlpha > 0 {
		fontFace := fonts.Body.Get()
		clr := scaleAlpha(cfg.White, overlay.HintAlpha)
		for i, line := range cfg.Overlay.HintText {
			lineWidth := len(line) * 7
			x := int((width - float64(lineWidth)) / 2)
			text.Draw(screen, line, fontFace, x, 48+i*18, clr)
		}
	}

	if overlay.FadeAlpha > 0 {
		vector.DrawFilledRect(
			screen,
			0, 0,
			float32(width), float32(height),
			color.RGBA{A: uint8(overlay.FadeAlpha * 255)},
			false,
		)
	}
}

// scaleAlpha premultiplies a color against a [0,1] alpha.
func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
