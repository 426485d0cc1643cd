package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Height is the screen space the toolbar occupies at the top of the window.
const Height = 26

// ToolbarAction is one button on the toolbar.
type ToolbarAction struct {
	Label   string
	OnClick func()
}

// Toolbar is the sandbox's strip of buttons plus a status line.
type Toolbar struct {
	UI *ebitenui.UI

	statusLabel *widget.Label
	face        text.Face
}

func NewToolbar(actions []ToolbarAction) *Toolbar {
	tb := &Toolbar{}
	tb.loadFonts()
	tb.buildUI(actions)
	return tb
}

func (tb *Toolbar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	tb.face = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (tb *Toolbar) buildUI(actions []ToolbarAction) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(3)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	for _, action := range actions {
		bar.AddChild(tb.button(action))
	}

	tb.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tb.face, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	bar.AddChild(tb.statusLabel)

	rootContainer.AddChild(bar)

	tb.UI = &ebitenui.UI{Container: rootContainer}
}

func (tb *Toolbar) button(action ToolbarAction) *widget.Button {
	onClick := action.OnClick
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 20)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(action.Label, &tb.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 220, 160, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// SetStatus replaces the status line
func (tb *Toolbar) SetStatus(msg string) {
	if tb.statusLabel != nil {
		tb.statusLabel.Label = msg
	}
}

func (tb *Toolbar) Update() {
	tb.UI.Update()
}

func (tb *Toolbar) Draw(screen *ebiten.Image) {
	tb.UI.Draw(screen)
}
