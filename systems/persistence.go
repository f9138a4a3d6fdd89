package systems

import (
	"encoding/json"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/logging"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SensitivityIndex int  `json:"sensitivityIndex"`
	InvertLookY      bool `json:"invertLookY"`
	HeadBob          bool `json:"headBob"`
	ShowFPS          bool `json:"showFps"`
	Fullscreen       bool `json:"fullscreen"`
	ResolutionIndex  int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "darkroom",
	})
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}

	settings.SensitivityIndex = clampStepIndex(settings.SensitivityIndex, len(cfg.Settings.SensitivitySteps))
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings collects the live settings singletons and writes them
func SaveCurrentSettings(e *ecs.ECS) {
	gameplay := GetOrCreateSettings(e)
	menu := GetOrCreateSettingsMenu(e)

	saved := &SavedSettings{
		SensitivityIndex: gameplay.SensitivityIndex,
		InvertLookY:      gameplay.InvertLookY,
		HeadBob:          gameplay.HeadBob,
		ShowFPS:          gameplay.ShowFPS,
		Fullscreen:       menu.Fullscreen,
		ResolutionIndex:  menu.ResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	gameplay := GetOrCreateSettings(e)
	gameplay.SensitivityIndex = saved.SensitivityIndex
	gameplay.InvertLookY = saved.InvertLookY
	gameplay.HeadBob = saved.HeadBob
	gameplay.ShowFPS = saved.ShowFPS

	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	// Update settings menu component if it exists
	if entry, ok := components.SettingsMenu.First(e.World); ok {
		menu := components.SettingsMenu.Get(entry)
		menu.Fullscreen = saved.Fullscreen
		menu.ResolutionIndex = saved.ResolutionIndex
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	savedStartup = saved

	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// savedStartup carries settings loaded before any scene exists; the
// settings singleton seeds itself from it on first access.
var savedStartup *SavedSettings
