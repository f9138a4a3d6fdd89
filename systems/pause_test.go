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

// tapAction presses an action for one frame and releases it on the next,
// running the given systems on both frames like a real game loop.
func tapAction(e *ecs.ECS, id cfg.ActionID, run ...func(*ecs.ECS)) {
	input := getOrCreateInput(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
	for _, system := range run {
		system(e)
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, system := range run {
		system(e)
	}
}

func TestPauseToggle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	require.False(t, GetOrCreatePause(e).IsPaused)

	tapAction(e, cfg.ActionPause, UpdatePause)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	tapAction(e, cfg.ActionPause, UpdatePause)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestPauseOpensOnResumeOption(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	pause.SelectedOption = components.MenuQuit

	tapAction(e, cfg.ActionPause, UpdatePause)

	assert.True(t, pause.IsPaused)
	assert.Equal(t, components.MenuResume, pause.SelectedOption)
}

func TestPauseMenuNavigationWraps(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	tapAction(e, cfg.ActionPause, UpdatePause)

	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	assert.Equal(t, components.MenuSettings, pause.SelectedOption)

	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	assert.Equal(t, components.MenuQuit, pause.SelectedOption)

	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	assert.Equal(t, components.MenuResume, pause.SelectedOption)

	tapAction(e, cfg.ActionMenuUp, UpdatePause)
	assert.Equal(t, components.MenuQuit, pause.SelectedOption)
}

func TestPauseSelectResume(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	tapAction(e, cfg.ActionPause, UpdatePause)
	require.True(t, pause.IsPaused)

	tapAction(e, cfg.ActionMenuSelect, UpdatePause)

	assert.False(t, pause.IsPaused)
	assert.False(t, pause.QuitToMenu)
}

func TestPauseSelectQuit(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	tapAction(e, cfg.ActionPause, UpdatePause)
	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	require.Equal(t, components.MenuQuit, pause.SelectedOption)

	tapAction(e, cfg.ActionMenuSelect, UpdatePause)

	assert.True(t, pause.QuitToMenu)
	assert.True(t, pause.IsPaused)
}

func TestPauseSelectSettings(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	tapAction(e, cfg.ActionPause, UpdatePause)
	tapAction(e, cfg.ActionMenuDown, UpdatePause)
	require.Equal(t, components.MenuSettings, pause.SelectedOption)

	tapAction(e, cfg.ActionMenuSelect, UpdatePause)

	assert.True(t, IsSettingsOpen(e))
	assert.True(t, GetOrCreateSettingsMenu(e).OpenedFromPause)
}

func TestPauseToggleGatedWhileSettingsOpen(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	tapAction(e, cfg.ActionPause, UpdatePause)
	OpenSettings(e, true)

	// Esc belongs to the settings menu now, the pause state must hold
	tapAction(e, cfg.ActionPause, UpdatePause)

	assert.True(t, pause.IsPaused)
}

func TestEscInSettingsReturnsToPauseMenu(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)

	// Pause, open settings, then Esc with both systems running in scene order
	tapAction(e, cfg.ActionPause, UpdatePause, UpdateSettingsMenu)
	tapAction(e, cfg.ActionMenuDown, UpdatePause, UpdateSettingsMenu)
	tapAction(e, cfg.ActionMenuSelect, UpdatePause, UpdateSettingsMenu)
	require.True(t, IsSettingsOpen(e))

	tapAction(e, cfg.ActionPause, UpdatePause, UpdateSettingsMenu)

	assert.False(t, IsSettingsOpen(e))
	assert.True(t, pause.IsPaused)
}

func TestWithGameplayChecksSkipsWhilePaused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	system := WithGameplayChecks(func(*ecs.ECS) { runs++ })

	system(e)
	assert.Equal(t, 1, runs)

	GetOrCreatePause(e).IsPaused = true
	system(e)
	assert.Equal(t, 1, runs)

	GetOrCreatePause(e).IsPaused = false
	system(e)
	assert.Equal(t, 2, runs)
}
