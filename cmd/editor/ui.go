package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rscedit/model"
	"golang.org/x/image/font/gofont/goregular"
)

const leftPanelW = 200

// DisplayPanel keeps the toggle buttons in step with the renderer's snapshot.
type DisplayPanel struct {
	toggles map[model.DisplayProperty]*widget.Button
}

func (p *DisplayPanel) Sync(cfg model.DisplayConfiguration) {
	if p == nil {
		return
	}
	for prop, btn := range p.toggles {
		if text := btn.Text(); text != nil {
			text.Label = toggleLabel(prop, cfg.Get(prop))
		}
	}
}

func toggleLabel(p model.DisplayProperty, on bool) string {
	if on {
		return fmt.Sprintf("%s: On", p.Label())
	}
	return fmt.Sprintf("%s: Off", p.Label())
}

func BuildEditorUI(
	initial model.DisplayConfiguration,
	presets []model.TerrainTemplate,
	onToggle func(p model.DisplayProperty),
	onPresetSelected func(index int),
	onFillSector func(),
) (*ebitenui.UI, *DisplayPanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme
	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelW, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	leftPanel.AddChild(widget.NewLabel(widget.LabelOpts.Text("Display", &fontFace, labelColor)))

	panel := &DisplayPanel{toggles: make(map[model.DisplayProperty]*widget.Button)}
	for _, prop := range model.DisplayProperties {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(toggleLabel(prop, initial.Get(prop)), &fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onToggle != nil {
					onToggle(prop)
				}
			}),
		)
		panel.toggles[prop] = btn
		leftPanel.AddChild(btn)
	}

	leftPanel.AddChild(widget.NewLabel(widget.LabelOpts.Text("Presets", &fontFace, labelColor)))
	for i, preset := range presets {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(fmt.Sprintf("%d. %s", i+1, preset.Name), &fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onPresetSelected != nil {
					onPresetSelected(i)
				}
			}),
		)
		leftPanel.AddChild(btn)
	}

	fillBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Fill sector", &fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onFillSector != nil {
				onFillSector()
			}
		}),
	)
	leftPanel.AddChild(fillBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel)
	ui.Container = root

	return ui, panel
}
