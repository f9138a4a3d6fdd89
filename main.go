package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/fonts"
	"github.com/pr-poehali-dev/realistic-horror-game/logging"
	"github.com/pr-poehali-dev/realistic-horror-game/scenes"
	"github.com/pr-poehali-dev/realistic-horror-game/systems"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Body, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 20)
	fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Optional config.yaml next to the binary overrides tuning defaults
	fc, err := config.Load("config.yaml")
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not apply config overrides")
	}
	level := "info"
	if fc != nil && fc.Logging.Level != "" {
		level = fc.Logging.Level
	}
	logging.Init(level)

	ebiten.SetWindowTitle("The Dark Room")
	res := config.Settings.Resolutions[config.Settings.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	_ = systems.InitPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		logging.Logger.Fatal().Err(err).Msg("game exited")
	}
}
