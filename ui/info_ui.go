package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var helpLines = []string{
	"WASD / arrows   pan",
	"wheel, + / -    zoom",
	"R               reset view",
	"H               toggle HUD",
	"I               toggle this panel",
	"F               fullscreen",
	"V               cycle window size",
}

// InfoUI is the ebitenui overlay listing controls and playback stats.
type InfoUI struct {
	UI *ebitenui.UI

	stepLabel    *widget.Label
	objectsLabel *widget.Label
	cameraLabel  *widget.Label
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewInfoUI builds the panel.
func NewInfoUI() *InfoUI {
	iui := &InfoUI{}
	iui.loadFonts()
	iui.buildUI()
	return iui
}

func (iui *InfoUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	iui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	iui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (iui *InfoUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(iui.newLabel("ORBITVIEW", &iui.titleFace, cfg.Orange))
	for _, line := range helpLines {
		panel.AddChild(iui.newLabel(line, &iui.normalFace, cfg.LightGray))
	}

	iui.stepLabel = iui.newLabel("", &iui.normalFace, cfg.LightBlue)
	iui.objectsLabel = iui.newLabel("", &iui.normalFace, cfg.LightBlue)
	iui.cameraLabel = iui.newLabel("", &iui.normalFace, cfg.LightBlue)
	iui.statusLabel = iui.newLabel("", &iui.normalFace, cfg.LightRed)
	panel.AddChild(iui.stepLabel)
	panel.AddChild(iui.objectsLabel)
	panel.AddChild(iui.cameraLabel)
	panel.AddChild(iui.statusLabel)

	rootContainer.AddChild(panel)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (iui *InfoUI) newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

// SetStats refreshes the stat labels.
func (iui *InfoUI) SetStats(stats systems.HUDStats) {
	iui.stepLabel.Label = fmt.Sprintf("step %d of %d (%s)", stats.Step+1, stats.Steps, stats.ID)
	iui.objectsLabel.Label = fmt.Sprintf("%d objects", stats.Objects)
	iui.cameraLabel.Label = fmt.Sprintf("zoom %.2f, pan %.1f / %.1f", stats.Camera.Zoom, stats.Camera.PanX, stats.Camera.PanY)
	iui.statusLabel.Label = ""
	if stats.LastErr != nil {
		iui.statusLabel.Label = fmt.Sprintf("%d snapshot loads failed, last: %v", stats.Failures, stats.LastErr)
	} else if stats.Failures > 0 {
		iui.statusLabel.Label = fmt.Sprintf("%d snapshot loads failed", stats.Failures)
	}
}

// Update runs the ebitenui input/layout pass.
func (iui *InfoUI) Update() {
	iui.UI.Update()
}
