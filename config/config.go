package config

import (
	"image/color"
	"math"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // meters per second

	// Look
	LookSensitivity float64 // radians per pixel of drag at sensitivity 1.0
	PitchLimit      float64 // max pitch magnitude, radians

	// Head bob (cosmetic, rendered horizon only)
	BobFrequency float64 // cycles per second at full input
	BobAmplitude float64 // pixels of vertical horizon offset
}

// RenderConfig contains raycaster tuning values
type RenderConfig struct {
	FOV             float64 // horizontal field of view, radians
	MaxViewDistance float64 // ray march cutoff, meters
	FogDensity      float64 // quadratic fog falloff factor
	TextureSize     int     // wall/prop texture edge, pixels
	WallScale       float64 // projected wall height at distance 1, in screen heights
	PitchPixels     float64 // horizon shift in pixels per radian of pitch
}

// FlashlightConfig contains flashlight and flicker tuning
type FlashlightConfig struct {
	BeamRadius float64 // beam radius in screen pixels
	Ambient    float64 // scene brightness with the light off

	// Flicker: intensity wanders between random targets, with an
	// occasional deep dip
	FlickerMin   float64
	FlickerMax   float64
	DipIntensity float64
	DipChance    float64 // probability a tween segment is a dip
}

// JoystickConfig describes the on-screen movement stick
type JoystickConfig struct {
	Radius       float64 // base circle radius, pixels
	KnobRadius   float64 // knob circle radius, pixels
	Margin       float64 // distance from the bottom-left corner to the center
	CaptureScale float64 // press within Radius*CaptureScale starts a drag
}

// HUDConfig describes the flashlight button and HUD colors
type HUDConfig struct {
	ButtonRadius float64 // flashlight button radius, pixels
	ButtonMargin float64 // distance from the bottom-right corner to the center

	StickBase  color.RGBA
	StickRing  color.RGBA
	StickKnob  color.RGBA
	ButtonIdle color.RGBA
	ButtonLit  color.RGBA
	ButtonIcon color.RGBA
}

// OverlayConfig describes the instructional overlay and scene fade
type OverlayConfig struct {
	HintText     []string
	HintHold     float32 // seconds the hint stays fully visible
	HintFade     float32 // seconds the hint takes to fade out
	FadeInLength float32 // scene fade-in from black, seconds
}

// PauseConfig contains pause menu configuration
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu styling
type MenuConfig struct {
	Title           string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	SubtitleColor   color.RGBA
}

// Config contains game-wide configuration values
type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var Render RenderConfig
var Flashlight FlashlightConfig
var Joystick JoystickConfig
var HUD HUDConfig
var Overlay OverlayConfig
var Pause PauseConfig
var Menu MenuConfig

// Color constants used across HUD and menus
var (
	White        = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	DimWhite     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	BloodRed     = color.RGBA{R: 170, G: 30, B: 25, A: 255}
	WarmYellow   = color.RGBA{R: 255, G: 214, B: 140, A: 255}
	DarkGray     = color.RGBA{R: 45, G: 45, B: 48, A: 255}
	NearBlack    = color.RGBA{R: 12, G: 11, B: 13, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 190}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		MoveSpeed:       2.5,
		LookSensitivity: 0.0042,
		PitchLimit:      1.1,
		BobFrequency:    1.8,
		BobAmplitude:    4.0,
	}

	Render = RenderConfig{
		FOV:             66 * math.Pi / 180,
		MaxViewDistance: 24.0,
		FogDensity:      0.05,
		TextureSize:     64,
		WallScale:       1.0,
		PitchPixels:     270,
	}

	Flashlight = FlashlightConfig{
		BeamRadius:   150,
		Ambient:      0.16,
		FlickerMin:   0.82,
		FlickerMax:   1.0,
		DipIntensity: 0.35,
		DipChance:    0.12,
	}

	Joystick = JoystickConfig{
		Radius:       40,
		KnobRadius:   16,
		Margin:       68,
		CaptureScale: 1.6,
	}

	HUD = HUDConfig{
		ButtonRadius: 26,
		ButtonMargin: 64,
		StickBase:    color.RGBA{R: 255, G: 255, B: 255, A: 26},
		StickRing:    color.RGBA{R: 255, G: 255, B: 255, A: 70},
		StickKnob:    color.RGBA{R: 255, G: 255, B: 255, A: 110},
		ButtonIdle:   color.RGBA{R: 255, G: 255, B: 255, A: 40},
		ButtonLit:    color.RGBA{R: 255, G: 214, B: 140, A: 90},
		ButtonIcon:   color.RGBA{R: 235, G: 235, B: 235, A: 200},
	}

	Overlay = OverlayConfig{
		HintText: []string{
			"DRAG THE STICK TO MOVE",
			"DRAG THE SCREEN TO LOOK AROUND",
			"TAP THE BUTTON OR PRESS F FOR THE FLASHLIGHT",
		},
		HintHold:     5.0,
		HintFade:     1.5,
		FadeInLength: 2.0,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: WarmYellow,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Exit"},
	}

	Menu = MenuConfig{
		Title:           "THE DARK ROOM",
		BackgroundColor: NearBlack,
		TitleColor:      BloodRed,
		SubtitleColor:   DimWhite,
	}
}
