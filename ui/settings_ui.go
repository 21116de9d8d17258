package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const deadZoneStep = 0.05

// SettingsUI is the clickable settings bar along the bottom of the viewer.
// It edits the same values as the keyboard shortcuts.
type SettingsUI struct {
	UI *ebitenui.UI

	deadZoneLabel   *widget.Label
	receiversButton *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewSettingsUI creates the settings bar
func NewSettingsUI() *SettingsUI {
	sui := &SettingsUI{}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	bar.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Dead zone", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	bar.AddChild(sui.newButton("-", 24, func() {
		systems.StepDeadZone(-deadZoneStep)
	}))

	sui.deadZoneLabel = widget.NewLabel(
		widget.LabelOpts.Text(formatDeadZone(), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	)
	bar.AddChild(sui.deadZoneLabel)

	bar.AddChild(sui.newButton("+", 24, func() {
		systems.StepDeadZone(deadZoneStep)
	}))

	sui.receiversButton = sui.newButton(formatReceivers(), 110, systems.ToggleReceivers)
	bar.AddChild(sui.receiversButton)

	rootContainer.AddChild(bar)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 20),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func formatDeadZone() string {
	return fmt.Sprintf("%.2f", cfg.Input.GamepadDeadZone)
}

func formatReceivers() string {
	if cfg.Debug.ShowReceivers {
		return "Receivers: on"
	}
	return "Receivers: off"
}

// UpdateUI copies the current settings into the widgets. The keyboard
// shortcuts change the same values, so this runs every frame.
func (sui *SettingsUI) UpdateUI() {
	if sui.deadZoneLabel != nil {
		sui.deadZoneLabel.Label = formatDeadZone()
	}
	if sui.receiversButton != nil {
		if textWidget := sui.receiversButton.Text(); textWidget != nil {
			textWidget.Label = formatReceivers()
		}
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}
