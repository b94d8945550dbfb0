package timerview

import (
	"testing"
	"time"

	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func snapshotFor(mode model.Mode, remaining time.Duration, running bool) timekeeper.Snapshot {
	config := model.DefaultConfiguration()
	total := config.Duration(mode)
	return timekeeper.Snapshot{
		Mode:      mode,
		Remaining: remaining,
		Total:     total,
		Progress:  float64(total-remaining) / float64(total),
		Running:   running,
		Config:    config,
	}
}

func TestUpdateRendersSnapshot(t *testing.T) {
	test.NewTempApp(t)
	view := New(Options{}, Callbacks{})

	snapshot := snapshotFor(model.ModeWork, 25*time.Minute, true)
	snapshot.CompletedCycles = 4
	snapshot.CyclesSinceLong = 1
	view.Update(snapshot)

	assert.Equal(t, "25:00", view.timeText.Text)
	assert.Equal(t, "Work", view.modeLabel.Text)
	assert.Equal(t, "Pause", view.toggle.Text)
	assert.Equal(t, "Progress: 50%", view.percent.Text)
	assert.InDelta(t, 0.5, view.progress.Value, 1e-9)
	assert.Equal(t, "Cycles done: 4 • Until long break: 2", view.footer.Text)

	view.Update(snapshotFor(model.ModeBreak, 10*time.Minute, false))
	assert.Equal(t, "Start", view.toggle.Text)
	assert.Equal(t, "Break", view.modes.Selected)
	assert.Equal(t, "Progress: 0%", view.percent.Text)
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	test.NewTempApp(t)
	toggles, resets := 0, 0
	view := New(Options{}, Callbacks{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
	})

	test.Tap(view.toggle)
	test.Tap(view.toggle)
	test.Tap(view.reset)

	assert.Equal(t, 2, toggles)
	assert.Equal(t, 1, resets)
}

func TestModeSelectionInvokesCallback(t *testing.T) {
	test.NewTempApp(t)
	var selected []model.Mode
	view := New(Options{}, Callbacks{OnMode: func(mode model.Mode) { selected = append(selected, mode) }})

	view.modes.SetSelected(model.ModeLongBreak.Label())
	assert.Equal(t, []model.Mode{model.ModeLongBreak}, selected)
}

func TestUpdateDoesNotEchoModeSelection(t *testing.T) {
	test.NewTempApp(t)
	calls := 0
	view := New(Options{}, Callbacks{OnMode: func(model.Mode) { calls++ }})

	view.Update(snapshotFor(model.ModeLongBreak, 20*time.Minute, false))

	assert.Equal(t, model.ModeLongBreak.Label(), view.modes.Selected)
	assert.Zero(t, calls)
}

func TestPercentTextFloors(t *testing.T) {
	assert.Equal(t, "Progress: 0%", PercentText(0))
	assert.Equal(t, "Progress: 99%", PercentText(0.999))
	assert.Equal(t, "Progress: 100%", PercentText(1))
}
