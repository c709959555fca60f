package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ArmoryUI is the weapon picker shown over the pause screen
type ArmoryUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelect func(index int) error
	OnResume func()

	// Current returns the equipped loadout index, or -1
	Current func() int

	weaponButtons []*widget.Button
	statusLabel   *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewArmoryUI creates a picker with one button per loadout entry
func NewArmoryUI(loadout []string, current func() int, onSelect func(int) error, onResume func()) *ArmoryUI {
	aui := &ArmoryUI{
		OnSelect: onSelect,
		OnResume: onResume,
		Current:  current,
	}

	aui.loadFonts()
	aui.buildUI(loadout)

	return aui
}

func (aui *ArmoryUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	aui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	aui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (aui *ArmoryUI) buildUI(loadout []string) {
	// Transparent root so the paused range stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("ARMORY", &aui.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	for i, name := range loadout {
		idx := i // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
			widget.ButtonOpts.Image(aui.buttonImage()),
			widget.ButtonOpts.Text(fmt.Sprintf("%d %s", i+1, name), &aui.smallFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: cfg.HUD.ChargeFgColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				aui.selectWeapon(idx)
			}),
		)
		aui.weaponButtons = append(aui.weaponButtons, button)
		row.AddChild(button)
	}
	panel.AddChild(row)

	resumeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 22)),
		widget.ButtonOpts.Image(aui.resumeButtonImage()),
		widget.ButtonOpts.Text("Resume", &aui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if aui.OnResume != nil {
				aui.OnResume()
			}
		}),
	)
	panel.AddChild(resumeButton)

	aui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &aui.smallFace, &widget.LabelColor{
			Idle: cfg.LightRed,
		}),
	)
	panel.AddChild(aui.statusLabel)

	rootContainer.AddChild(panel)

	aui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (aui *ArmoryUI) selectWeapon(index int) {
	if aui.OnSelect == nil {
		return
	}
	if err := aui.OnSelect(index); err != nil {
		aui.statusLabel.Label = err.Error()
	} else {
		aui.statusLabel.Label = ""
	}
	aui.UpdateUI()
}

func (aui *ArmoryUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{90, 60, 30, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (aui *ArmoryUI) resumeButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI marks the equipped weapon. Its button is disabled so clicking it
// again does not tear down a live weapon for nothing.
func (aui *ArmoryUI) UpdateUI() {
	current := -1
	if aui.Current != nil {
		current = aui.Current()
	}
	for i, b := range aui.weaponButtons {
		b.GetWidget().Disabled = i == current
	}
}

// Update calls the UI's Update method
func (aui *ArmoryUI) Update() {
	aui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !aui.initialized {
		aui.initialized = true
		aui.UpdateUI()
	}
}
