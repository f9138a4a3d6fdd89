package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the diagnostics overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := getOrCreateDebug(ecs)
		debug.Visible = !debug.Visible
	}
}

// DrawDebug renders position, orientation and timing diagnostics, plus the
// standalone FPS counter when enabled in settings.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	debug := getOrCreateDebug(ecs)

	fontFace := fonts.Small.Get()

	if settings.ShowFPS && !debug.Visible {
		fps := fmt.Sprintf("%.0f FPS", ebiten.ActualFPS())
		x := screen.Bounds().Dx() - len(fps)*7 - 8
		text.Draw(screen, fps, fontFace, x, 16, cfg.DimWhite)
	}

	if !debug.Visible {
		return
	}

	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	if entry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(entry)
		lines = append(lines,
			fmt.Sprintf("pos  %.2f, %.2f", player.Position.X, player.Position.Y),
			fmt.Sprintf("yaw  %.3f  pitch %.3f", player.Yaw, player.Pitch),
		)
	}

	if entry, ok := components.Joystick.First(ecs.World); ok {
		joystick := components.Joystick.Get(entry)
		lines = append(lines, fmt.Sprintf("move %.2f, %.2f", joystick.Value.X, joystick.Value.Y))
	}

	if entry, ok := components.Flashlight.First(ecs.World); ok {
		flashlight := components.Flashlight.Get(entry)
		state := "off"
		if flashlight.On {
			state = fmt.Sprintf("on %.2f", flashlight.Intensity)
		}
		lines = append(lines, "light "+state)
	}

	for i, line := range lines {
		text.Draw(screen, line, fontFace, 8, 16+i*14, cfg.White)
	}
}

// getOrCreateDebug returns the singleton Debug component, creating if needed
func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}
