package systems

import (
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global shortcuts that work in any state.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// F11 toggles fullscreen everywhere, keeping the menu state in sync
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		toggleFullscreen(GetOrCreateSettingsMenu(e))
	}
}

// GetOrCreateSettings returns the singleton gameplay settings, seeding them
// from saved settings when present, config defaults otherwise.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))

		data := components.SettingsData{
			SensitivityIndex: cfg.Settings.DefaultSensitivityIndex,
			InvertLookY:      cfg.Settings.DefaultInvertLookY,
			HeadBob:          cfg.Settings.DefaultHeadBob,
			ShowFPS:          cfg.Settings.DefaultShowFPS,
		}
		if savedStartup != nil {
			data.SensitivityIndex = savedStartup.SensitivityIndex
			data.InvertLookY = savedStartup.InvertLookY
			data.HeadBob = savedStartup.HeadBob
			data.ShowFPS = savedStartup.ShowFPS
		}
		components.Settings.SetValue(ent, data)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
