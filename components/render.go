package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RenderData owns the raycaster's working buffers. Frame is the
// offscreen target the room is drawn into before the lighting shader
// pass; Depth holds the perpendicular wall distance per screen column
// so billboard props can be occluded. Both are allocated once and
// reused every frame.
type RenderData struct {
	Frame      *ebiten.Image
	Depth      []float64
	Background *ebiten.Image // prebuilt ceiling/floor gradient, taller than the frame so the horizon can shift

	FogPhase float64 // slow ambient breathing of the fog
}

var Render = donburi.NewComponentType[RenderData]()
