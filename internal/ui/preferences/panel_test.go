package preferences

import (
	"testing"

	"workrest/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelShowsConfiguration(t *testing.T) {
	test.NewTempApp(t)
	panel := New(model.DefaultConfiguration(), nil)

	require.Len(t, panel.rows, 4)
	assert.Equal(t, "Work (min): 50", panel.rows[0].caption.Text)
	assert.Equal(t, float64(50), panel.rows[0].slider.Value)
	assert.Equal(t, float64(120), panel.rows[0].slider.Max)
	assert.Equal(t, "Cycles until long break: 3", panel.rows[3].caption.Text)
	assert.True(t, panel.autoStart.Checked)
	assert.True(t, panel.vibrate.Checked)
}

func TestSliderChangeReportsImmediately(t *testing.T) {
	test.NewTempApp(t)
	var changes []model.Configuration
	panel := New(model.DefaultConfiguration(), func(config model.Configuration) {
		changes = append(changes, config)
	})

	panel.rows[1].slider.OnChanged(15)
	panel.rows[1].slider.OnChanged(15.2)

	require.Len(t, changes, 1)
	assert.Equal(t, 15, changes[0].BreakMinutes)
	assert.Equal(t, 50, changes[0].WorkMinutes)
	assert.Equal(t, "Break (min): 15", panel.rows[1].caption.Text)
}

func TestToggleChecksReportChange(t *testing.T) {
	test.NewTempApp(t)
	var last model.Configuration
	calls := 0
	panel := New(model.DefaultConfiguration(), func(config model.Configuration) {
		last = config
		calls++
	})

	test.Tap(panel.autoStart)
	assert.Equal(t, 1, calls)
	assert.False(t, last.AutoStart)

	test.Tap(panel.vibrate)
	assert.Equal(t, 2, calls)
	assert.False(t, last.VibrateOnEnd)
	assert.False(t, last.AutoStart)
}

func TestUpdateSettingsIsSilent(t *testing.T) {
	test.NewTempApp(t)
	calls := 0
	panel := New(model.DefaultConfiguration(), func(model.Configuration) { calls++ })

	config := model.Configuration{WorkMinutes: 5, BreakMinutes: 2, LongBreakMinutes: 30, CyclesToLong: 4}
	panel.UpdateSettings(config)

	assert.Zero(t, calls)
	assert.Equal(t, config, panel.Configuration())
	assert.Equal(t, "Work (min): 5", panel.rows[0].caption.Text)
	assert.Equal(t, float64(10), panel.rows[0].slider.Value, "slider clamps to its range")
	assert.False(t, panel.autoStart.Checked)
}
