package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
)

// pointer is a unified view over touches and the mouse cursor.
// Touch IDs map directly; the mouse uses components.MousePointer.
type pointer struct {
	id       components.PointerID
	pos      gamemath.Vec2
	justDown bool
}

// Reusable slices to avoid per-frame allocations
var (
	touchIDs     []ebiten.TouchID
	justTouchIDs []ebiten.TouchID
	pointers     []pointer
)

// collectPointers gathers all active pointers this frame.
// The returned slice is reused across frames; do not retain it.
func collectPointers() []pointer {
	pointers = pointers[:0]

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	justTouchIDs = inpututil.AppendJustPressedTouchIDs(justTouchIDs[:0])

	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		p := pointer{
			id:  components.PointerID(id),
			pos: gamemath.Vec2{X: float64(x), Y: float64(y)},
		}
		for _, jid := range justTouchIDs {
			if jid == id {
				p.justDown = true
				break
			}
		}
		pointers = append(pointers, p)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pointers = append(pointers, pointer{
			id:       components.MousePointer,
			pos:      gamemath.Vec2{X: float64(x), Y: float64(y)},
			justDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}

	return pointers
}

// findPointer looks up a pointer by ID. Returns nil if it lifted this frame.
func findPointer(ps []pointer, id components.PointerID) *pointer {
	for i := range ps {
		if ps[i].id == id {
			return &ps[i]
		}
	}
	return nil
}
