package tray

import (
	"testing"
	"time"

	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func TestStatus(t *testing.T) {
	snapshot := timekeeper.Snapshot{Mode: model.ModeWork, Remaining: 24*time.Minute + 59*time.Second}
	assert.Equal(t, "Work 24:59 (paused)", Status(snapshot))

	snapshot.Mode = model.ModeLongBreak
	snapshot.Running = true
	snapshot.Remaining = 125 * time.Minute
	assert.Equal(t, "Long break 125:00", Status(snapshot))
}

func TestUpdateRefreshesMenu(t *testing.T) {
	test.NewTempApp(t)
	host := &fakeHost{}
	manager := New(host, "WorkRest", Callbacks{})
	require.Len(t, host.menus, 1)

	manager.Update(timekeeper.Snapshot{Mode: model.ModeBreak, Remaining: 10 * time.Minute, Running: true})

	require.Len(t, host.menus, 2)
	assert.Equal(t, "Break 10:00", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.True(t, manager.modeItems[model.ModeBreak].Checked)
	assert.False(t, manager.modeItems[model.ModeWork].Checked)
}

func TestMenuActionsInvokeCallbacks(t *testing.T) {
	test.NewTempApp(t)
	var actions []string
	var modes []model.Mode
	manager := New(&fakeHost{}, "WorkRest", Callbacks{
		OnToggle:   func() { actions = append(actions, "toggle") },
		OnReset:    func() { actions = append(actions, "reset") },
		OnMode:     func(mode model.Mode) { modes = append(modes, mode) },
		OnSettings: func() { actions = append(actions, "settings") },
		OnQuit:     func() { actions = append(actions, "quit") },
	})

	manager.toggleItem.Action()
	manager.resetItem.Action()
	manager.settings.Action()
	manager.quit.Action()
	manager.modeItems[model.ModeLongBreak].Action()
	manager.modeItems[model.ModeWork].Action()

	assert.Equal(t, []string{"toggle", "reset", "settings", "quit"}, actions)
	assert.Equal(t, []model.Mode{model.ModeLongBreak, model.ModeWork}, modes)
}
