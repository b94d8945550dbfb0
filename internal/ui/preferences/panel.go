package preferences

import (
	"math"

	"workrest/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type sliderRow struct {
	field   field
	caption *widget.Label
	slider  *widget.Slider
}

// Panel is the settings screen. Every edit is reported through onChange
// right away; there is no save step.
type Panel struct {
	config    model.Configuration
	onChange  func(model.Configuration)
	rows      []*sliderRow
	autoStart *widget.Check
	vibrate   *widget.Check
	content   fyne.CanvasObject
	updating  bool
}

// New creates the settings screen showing config.
func New(config model.Configuration, onChange func(model.Configuration)) *Panel {
	panel := &Panel{config: config, onChange: onChange}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	)
	for _, entry := range fields {
		row := &sliderRow{
			field:   entry,
			caption: widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			slider:  widget.NewSlider(float64(entry.bound.Min), float64(entry.bound.Max)),
		}
		row.slider.Step = 1
		row.slider.OnChanged = func(value float64) { panel.handleSlider(row, value) }
		panel.rows = append(panel.rows, row)
		form.Add(row.caption)
		form.Add(row.slider)
	}

	panel.autoStart = widget.NewCheck("Auto-start next period", func(checked bool) {
		panel.apply(func(config *model.Configuration) { config.AutoStart = checked })
	})
	panel.vibrate = widget.NewCheck("Vibrate when a period ends", func(checked bool) {
		panel.apply(func(config *model.Configuration) { config.VibrateOnEnd = checked })
	})
	form.Add(container.NewHBox(panel.autoStart, panel.vibrate))

	tip := widget.NewLabelWithStyle(Tip, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	tip.Wrapping = fyne.TextWrapWord
	tip.Importance = widget.LowImportance

	panel.content = container.NewBorder(nil, tip, nil, nil, container.NewVBox(form, layout.NewSpacer()))
	panel.UpdateSettings(config)

	return panel
}

// Content returns the root canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Configuration returns the values currently shown.
func (panel *Panel) Configuration() model.Configuration {
	return panel.config
}

// UpdateSettings replaces the shown values without reporting a change.
func (panel *Panel) UpdateSettings(config model.Configuration) {
	panel.updating = true
	defer func() { panel.updating = false }()

	panel.config = config
	for _, row := range panel.rows {
		value := row.field.get(config)
		row.caption.SetText(row.field.caption(value))
		row.slider.SetValue(float64(row.field.bound.Clamp(value)))
	}
	panel.autoStart.SetChecked(config.AutoStart)
	panel.vibrate.SetChecked(config.VibrateOnEnd)
}

func (panel *Panel) handleSlider(row *sliderRow, raw float64) {
	if panel.updating {
		return
	}
	value := int(math.Round(raw))
	if value == row.field.get(panel.config) {
		return
	}
	row.caption.SetText(row.field.caption(value))
	panel.apply(func(config *model.Configuration) { row.field.set(config, value) })
}

func (panel *Panel) apply(edit func(*model.Configuration)) {
	if panel.updating {
		return
	}
	edit(&panel.config)
	if panel.onChange != nil {
		panel.onChange(panel.config)
	}
}
