package factory

import (
	"github.com/pr-poehali-dev/realistic-horror-game/archetypes"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the fade-from-black and the instructional hint.
// The hint holds fully visible, then fades out once and stays gone.
func CreateOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		FadeIn:    gween.New(1, 0, cfg.Overlay.FadeInLength, ease.OutQuad),
		FadeAlpha: 1,
		HintHold:  cfg.Overlay.HintHold,
		HintFade:  gween.New(1, 0, cfg.Overlay.HintFade, ease.Linear),
		HintAlpha: 1,
	})
	return overlay
}
