// Package tray mirrors the timer in the desktop system tray.
package tray

import (
	"fmt"

	"workrest/internal/core/countdown"
	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnMode     func(model.Mode)
	OnSettings func()
	OnQuit     func()
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	title      string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	modeItems  map[model.Mode]*fyne.MenuItem
	settings   *fyne.MenuItem
	quit       *fyne.MenuItem
	menu       *fyne.Menu
}

// New creates a tray manager and installs its menu on host.
func New(host Host, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		title:     title,
		callbacks: callbacks,
		modeItems: make(map[model.Mode]*fyne.MenuItem, len(model.Modes)),
	}

	manager.statusItem = fyne.NewMenuItem("Starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	modeItems := make([]*fyne.MenuItem, 0, len(model.Modes))
	for _, mode := range model.Modes {
		item := fyne.NewMenuItem(mode.Label(), func() {
			if manager.callbacks.OnMode != nil {
				manager.callbacks.OnMode(mode)
			}
		})
		manager.modeItems[mode] = item
		modeItems = append(modeItems, item)
	}
	switchItem := fyne.NewMenuItem("Switch to", nil)
	switchItem.ChildMenu = fyne.NewMenu("", modeItems...)

	manager.settings = fyne.NewMenuItem("Settings", func() {
		if manager.callbacks.OnSettings != nil {
			manager.callbacks.OnSettings()
		}
	})
	manager.quit = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quit.IsQuit = true

	manager.menu = fyne.NewMenu(title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		switchItem,
		fyne.NewMenuItemSeparator(),
		manager.settings,
		manager.quit,
	)
	manager.refreshMenu()

	return manager
}

// Update mirrors snapshot into the menu.
func (manager *Manager) Update(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = Status(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	for mode, item := range manager.modeItems {
		item.Checked = mode == snapshot.Mode
	}
	manager.refreshMenu()
}

// Status renders the tray status line, e.g. "Work 24:59 (paused)".
func Status(snapshot timekeeper.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Mode.Label(), countdown.FormatRemaining(snapshot.Remaining))
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(manager.menu)
}
