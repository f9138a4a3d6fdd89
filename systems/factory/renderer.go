package factory

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRenderer allocates the raycaster's frame, depth buffer and the
// ceiling/floor gradient. All of it is reused every frame.
func CreateRenderer(ecs *ecs.ECS) *donburi.Entry {
	w, h := cfg.C.Width, cfg.C.Height

	renderer := archetypes.Renderer.Spawn(ecs)
	components.Render.SetValue(renderer, components.RenderData{
		Frame:      ebiten.NewImage(w, h),
		Depth:      make([]float64, w),
		Background: buildBackground(w, h),
	})
	return renderer
}

// buildBackground paints a gradient three frame-heights tall with the
// ceiling/floor seam in the middle. It is darkest at the seam, which reads
// as the farthest distance, and brightens slightly toward the edges.
func buildBackground(w, h int) *ebiten.Image {
	height := 3 * h
	seam := float64(height) / 2

	img := image.NewRGBA(image.Rect(0, 0, w, height))
	for y := 0; y < height; y++ {
		t := math.Abs(float64(y)-seam) / seam

		var c color.RGBA
		if float64(y) < seam {
			// Ceiling, a cold near-black
			c = color.RGBA{
				R: uint8(4 + 11*t),
				G: uint8(4 + 10*t),
				B: uint8(5 + 14*t),
				A: 255,
			}
		} else {
			// Floor, warmer and a touch brighter up close
			c = color.RGBA{
				R: uint8(5 + 19*t),
				G: uint8(4 + 15*t),
				B: uint8(4 + 12*t),
				A: 255,
			}
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}
