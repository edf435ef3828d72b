package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/phaserunner/assets"
	"github.com/milk9111/phaserunner/save"
)

type menuButton struct {
	label   string
	onClick func()
}

// newPanelUI builds a centered panel with a title, some text lines and a
// column of buttons.
func newPanelUI(width, height float64, title string, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var titleFace ebtext.Face = assets.Face(28)
	var face ebtext.Face = assets.Face(16)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(width*0.7), int(height*0.4)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &titleFace, white),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, white),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// settingsButtons are shared by the menu and game over panels.
func (g *Game) settingsButtons() []menuButton {
	return []menuButton{
		{label: fmt.Sprintf("Controls: %s", g.settings.Control), onClick: func() {
			g.settings.Control = g.settings.NextControl()
			g.settingsChanged()
		}},
		{label: fmt.Sprintf("Sound: %s", onOff(g.settings.Sound)), onClick: func() {
			g.settings.Sound = !g.settings.Sound
			g.settingsChanged()
		}},
		{label: fmt.Sprintf("Debug: %s", onOff(g.settings.ShowDebug)), onClick: func() {
			g.settings.ShowDebug = !g.settings.ShowDebug
			g.settingsChanged()
		}},
	}
}

func controlHint(mode save.ControlMode) string {
	if mode == save.ControlKeys {
		return "arrows move, space flips phase"
	}
	return "drag to move, tap to flip phase"
}

// NewMenuUI builds the title screen.
func NewMenuUI(g *Game) *ebitenui.UI {
	buttons := append([]menuButton{{label: "Play", onClick: g.startRun}}, g.settingsButtons()...)
	lines := []string{
		fmt.Sprintf("Best %d", g.runner.Best()),
		controlHint(g.settings.Control),
	}
	return newPanelUI(g.width(), g.height(), "Phase Runner", lines, buttons)
}

// NewGameOverUI builds the panel shown after a run ends.
func NewGameOverUI(g *Game) *ebitenui.UI {
	res := g.result
	lines := []string{fmt.Sprintf("Score %d", res.Score), fmt.Sprintf("Best %d", res.Best)}
	if res.NewBest {
		lines = append(lines, "New best!")
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	buttons := []menuButton{{label: "Play again", onClick: g.startRun}}
	if g.clipboardOK {
		buttons = append(buttons, menuButton{label: "Copy score", onClick: g.copyResult})
	}
	buttons = append(buttons, g.settingsButtons()...)
	return newPanelUI(g.width(), g.height(), "Game over", lines, buttons)
}
