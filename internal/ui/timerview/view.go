// Package timerview renders the timer screen.
package timerview

import (
	"fmt"
	"image/color"

	"workrest/internal/core/countdown"
	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"
	"workrest/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines timer screen action handlers.
type Callbacks struct {
	OnToggle func()
	OnReset  func()
	OnMode   func(model.Mode)
}

// Options defines timer screen visuals.
type Options struct {
	Smoothing animation.Config
}

var (
	workAccent  = color.NRGBA{R: 56, G: 189, B: 248, A: 255}
	breakAccent = color.NRGBA{R: 52, G: 199, B: 120, A: 255}
	ringColor   = color.NRGBA{R: 226, G: 232, B: 240, A: 255}
)

const dialSize = float32(260)

// View is the timer screen. Update must run on the fyne main thread.
type View struct {
	callbacks Callbacks
	modeLabel *widget.Label
	ring      *canvas.Circle
	timeText  *canvas.Text
	hintLabel *widget.Label
	progress  *widget.ProgressBar
	percent   *widget.Label
	toggle    *widget.Button
	reset     *widget.Button
	modes     *widget.RadioGroup
	footer    *widget.Label
	smoother  *animation.Smoother
	content   fyne.CanvasObject
	mode      model.Mode
	updating  bool
}

// New builds the timer screen.
func New(options Options, callbacks Callbacks) *View {
	view := &View{callbacks: callbacks, mode: model.ModeWork}

	view.modeLabel = widget.NewLabelWithStyle(model.ModeWork.Label(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	view.ring = canvas.NewCircle(color.Transparent)
	view.ring.StrokeColor = ringColor
	view.ring.StrokeWidth = 16

	view.timeText = canvas.NewText("--:--", workAccent)
	view.timeText.Alignment = fyne.TextAlignCenter
	view.timeText.TextStyle = fyne.TextStyle{Bold: true}
	view.timeText.TextSize = 48

	view.hintLabel = widget.NewLabelWithStyle("remaining", fyne.TextAlignCenter, fyne.TextStyle{})

	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }
	view.percent = widget.NewLabelWithStyle("Progress: 0%", fyne.TextAlignCenter, fyne.TextStyle{})

	view.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})

	labels := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		labels = append(labels, mode.Label())
	}
	view.modes = widget.NewRadioGroup(labels, view.handleModeSelected)
	view.modes.Horizontal = true
	view.modes.Required = true
	view.updating = true
	view.modes.SetSelected(model.ModeWork.Label())
	view.updating = false

	view.footer = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.footer.Importance = widget.LowImportance

	view.smoother = animation.New(options.Smoothing, view.showProgress)

	dial := container.New(&dialLayout{}, view.ring, view.timeText, view.hintLabel)
	buttons := container.NewHBox(layout.NewSpacer(), view.toggle, view.reset, layout.NewSpacer())
	body := container.NewVBox(
		view.modeLabel,
		container.NewCenter(dial),
		view.progress,
		view.percent,
		buttons,
		container.NewCenter(view.modes),
	)
	view.content = container.NewBorder(nil, view.footer, nil, nil, container.NewPadded(body))

	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Update renders snapshot.
func (view *View) Update(snapshot timekeeper.Snapshot) {
	if snapshot.Mode != view.mode {
		view.mode = snapshot.Mode
		view.smoother.Jump(snapshot.Progress)
	} else {
		view.smoother.SetTarget(snapshot.Progress)
	}

	view.modeLabel.SetText(snapshot.Mode.Label())

	view.timeText.Text = countdown.FormatRemaining(snapshot.Remaining)
	view.timeText.Color = accentFor(snapshot.Mode)
	view.timeText.Refresh()

	if snapshot.Running {
		view.toggle.SetText("Pause")
		view.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggle.SetText("Start")
		view.toggle.SetIcon(theme.MediaPlayIcon())
	}

	if view.modes.Selected != snapshot.Mode.Label() {
		view.updating = true
		view.modes.SetSelected(snapshot.Mode.Label())
		view.updating = false
	}

	view.footer.SetText(FooterText(snapshot))
}

// FooterText renders the cycle counters.
func FooterText(snapshot timekeeper.Snapshot) string {
	return fmt.Sprintf("Cycles done: %d • Until long break: %d", snapshot.CompletedCycles, snapshot.CyclesUntilLong())
}

// PercentText renders the progress label for a displayed fraction.
func PercentText(progress float64) string {
	return fmt.Sprintf("Progress: %d%%", int(progress*100))
}

func (view *View) showProgress(value float64) {
	view.progress.SetValue(value)
	view.percent.SetText(PercentText(value))
}

func (view *View) handleModeSelected(selected string) {
	if view.updating {
		return
	}
	mode, ok := model.ParseMode(selected)
	if !ok {
		return
	}
	if view.callbacks.OnMode != nil {
		view.callbacks.OnMode(mode)
	}
}

func accentFor(mode model.Mode) color.Color {
	if mode == model.ModeWork {
		return workAccent
	}
	return breakAccent
}

// dialLayout draws the ring as a square and centers the time and hint inside it.
type dialLayout struct{}

func (dial *dialLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	ring := objects[0]
	timeText := objects[1]
	hint := objects[2]

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	ring.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
	ring.Resize(fyne.NewSize(side, side))

	timeSize := timeText.MinSize()
	hintSize := hint.MinSize()
	blockHeight := timeSize.Height + hintSize.Height
	top := (size.Height - blockHeight) / 2

	timeText.Move(fyne.NewPos(0, top))
	timeText.Resize(fyne.NewSize(size.Width, timeSize.Height))
	hint.Move(fyne.NewPos(0, top+timeSize.Height))
	hint.Resize(fyne.NewSize(size.Width, hintSize.Height))
}

func (dial *dialLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	side := dialSize
	timeSize := objects[1].MinSize()
	if timeSize.Width+32 > side {
		side = timeSize.Width + 32
	}
	return fyne.NewSize(side, side)
}
