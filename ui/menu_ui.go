package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title screen
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart      func()
	OnFullscreen func()
	OnExit       func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title screen UI
func NewMenuUI(onStart, onFullscreen, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnStart:      onStart,
		OnFullscreen: onFullscreen,
		OnExit:       onExit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized for the 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   30,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("do not lose the light", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.SubtitleColor,
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.menuButton("START", mui.startButtonImage(), func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))
	contentContainer.AddChild(mui.menuButton("FULLSCREEN", mui.buttonImage(), func() {
		if mui.OnFullscreen != nil {
			mui.OnFullscreen()
		}
	}))
	contentContainer.AddChild(mui.menuButton("EXIT", mui.buttonImage(), func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	// Hint at the bottom of the stack
	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Enter: start   F11: fullscreen", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{90, 88, 92, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) menuButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.WarmYellow,
			Pressed: cfg.DimWhite,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{28, 26, 30, 255})
	hover := image.NewNineSliceColor(color.RGBA{44, 40, 46, 255})
	pressed := image.NewNineSliceColor(color.RGBA{18, 16, 20, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{66, 16, 14, 255})
	hover := image.NewNineSliceColor(color.RGBA{96, 24, 20, 255})
	pressed := image.NewNineSliceColor(color.RGBA{48, 12, 10, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
