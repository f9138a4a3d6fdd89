package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
)

func TestOpenSettingsResetsSelection(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	s := GetOrCreateSettingsMenu(e)
	s.SelectedOption = components.SettingsOptBack

	OpenSettings(e, true)

	assert.True(t, s.IsOpen)
	assert.True(t, s.OpenedFromPause)
	assert.Equal(t, components.SettingsOptSensitivity, s.SelectedOption)
}

func TestSettingsMenuIgnoresInputWhileClosed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	s := GetOrCreateSettingsMenu(e)
	gameplay := GetOrCreateSettings(e)
	before := gameplay.SensitivityIndex

	tapAction(e, cfg.ActionMenuRight, UpdateSettingsMenu)

	assert.False(t, s.IsOpen)
	assert.Equal(t, before, gameplay.SensitivityIndex)
}

func TestSettingsSensitivityAdjustClamps(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	gameplay := GetOrCreateSettings(e)
	steps := len(cfg.Settings.SensitivitySteps)

	for i := 0; i < steps+2; i++ {
		tapAction(e, cfg.ActionMenuRight, UpdateSettingsMenu)
	}
	assert.Equal(t, steps-1, gameplay.SensitivityIndex)

	for i := 0; i < steps+2; i++ {
		tapAction(e, cfg.ActionMenuLeft, UpdateSettingsMenu)
	}
	assert.Equal(t, 0, gameplay.SensitivityIndex)
}

func TestSettingsToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	s := GetOrCreateSettingsMenu(e)
	gameplay := GetOrCreateSettings(e)

	// Down to Invert Look Y, toggle twice through adjust and select
	tapAction(e, cfg.ActionMenuDown, UpdateSettingsMenu)
	require.Equal(t, components.SettingsOptInvertY, s.SelectedOption)

	tapAction(e, cfg.ActionMenuRight, UpdateSettingsMenu)
	assert.True(t, gameplay.InvertLookY)
	tapAction(e, cfg.ActionMenuSelect, UpdateSettingsMenu)
	assert.False(t, gameplay.InvertLookY)

	// Head bob defaults on, one toggle turns it off
	tapAction(e, cfg.ActionMenuDown, UpdateSettingsMenu)
	require.Equal(t, components.SettingsOptHeadBob, s.SelectedOption)
	tapAction(e, cfg.ActionMenuLeft, UpdateSettingsMenu)
	assert.False(t, gameplay.HeadBob)
}

func TestSettingsNavigationSkipsResolutionWhenFullscreen(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	s := GetOrCreateSettingsMenu(e)
	s.Fullscreen = true
	s.SelectedOption = components.SettingsOptFullscreen

	tapAction(e, cfg.ActionMenuDown, UpdateSettingsMenu)
	assert.Equal(t, components.SettingsOptBack, s.SelectedOption)

	tapAction(e, cfg.ActionMenuUp, UpdateSettingsMenu)
	assert.Equal(t, components.SettingsOptFullscreen, s.SelectedOption)
}

func TestSettingsResolutionCycles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	s := GetOrCreateSettingsMenu(e)
	s.SelectedOption = components.SettingsOptResolution
	s.ResolutionIndex = 0
	n := len(cfg.Settings.Resolutions)

	tapAction(e, cfg.ActionMenuRight, UpdateSettingsMenu)
	assert.Equal(t, 1, s.ResolutionIndex)

	tapAction(e, cfg.ActionMenuLeft, UpdateSettingsMenu)
	tapAction(e, cfg.ActionMenuLeft, UpdateSettingsMenu)
	assert.Equal(t, n-1, s.ResolutionIndex)
}

func TestSettingsCloseOnBackAction(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	require.True(t, IsSettingsOpen(e))

	tapAction(e, cfg.ActionMenuBack, UpdateSettingsMenu)

	assert.False(t, IsSettingsOpen(e))
}

func TestSettingsCloseOnBackOption(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	OpenSettings(e, false)
	s := GetOrCreateSettingsMenu(e)
	s.SelectedOption = components.SettingsOptBack

	tapAction(e, cfg.ActionMenuSelect, UpdateSettingsMenu)

	assert.False(t, s.IsOpen)
}

func TestClampStepIndex(t *testing.T) {
	assert.Equal(t, 0, clampStepIndex(-1, 5))
	assert.Equal(t, 0, clampStepIndex(0, 5))
	assert.Equal(t, 3, clampStepIndex(3, 5))
	assert.Equal(t, 4, clampStepIndex(5, 5))
	assert.Equal(t, 4, clampStepIndex(99, 5))
}

func TestFormatToggle(t *testing.T) {
	assert.Equal(t, "[X] On", formatToggle(true))
	assert.Equal(t, "[ ] Off", formatToggle(false))
}

func TestFormatSensitivity(t *testing.T) {
	got := formatSensitivity(2)
	assert.Contains(t, got, "1.00x")
	assert.Contains(t, got, "|")

	// Out-of-range index falls back to the default marker
	assert.Equal(t, formatSensitivity(cfg.Settings.DefaultSensitivityIndex), formatSensitivity(-3))
}
