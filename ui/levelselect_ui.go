package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one row of the level list.
type LevelEntry struct {
	Number   int
	Name     string
	Unlocked bool
	BestTime string // empty when the level was never finished
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(level int)
	OnGoBack func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(levels []LevelEntry, onSelect func(level int), onGoBack func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnSelect: onSelect,
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI(levels)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *LevelSelectUI) buildUI(levels []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LEVEL SELECT", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, level := range levels {
		contentContainer.AddChild(ui.buildLevelRow(level))
	}

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) buildLevelRow(level LevelEntry) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	number := level.Number
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{90, 90, 130, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{35, 35, 45, 255}),
		}),
		widget.ButtonOpts.Text(fmt.Sprintf("%d. %s", level.Number, level.Name), &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 180, 50, 255},
			Pressed:  color.RGBA{200, 150, 50, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(number)
			}
		}),
	)
	if !level.Unlocked {
		btn.GetWidget().Disabled = true
	}
	row.AddChild(btn)

	status := "Locked"
	switch {
	case level.Unlocked && level.BestTime != "":
		status = "Best " + level.BestTime
	case level.Unlocked:
		status = "--:--.-"
	}
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(status, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	return row
}

func (ui *LevelSelectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
