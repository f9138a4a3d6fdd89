package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData drives the scene fade-in from black and the instructional
// hint that holds for a few seconds, then fades out and stays gone.
type OverlayData struct {
	FadeIn    *gween.Tween // screen fade alpha 1 -> 0
	FadeAlpha float32

	HintHold  float32      // seconds of full visibility remaining
	HintFade  *gween.Tween // hint alpha 1 -> 0, started after the hold
	HintAlpha float32
	HintDone  bool
}

var Overlay = donburi.NewComponentType[OverlayData]()
