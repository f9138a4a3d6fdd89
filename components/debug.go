package components

import "github.com/yohamta/donburi"

// DebugData toggles the F3 diagnostics overlay.
type DebugData struct {
	Visible bool
}

var Debug = donburi.NewComponentType[DebugData]()
