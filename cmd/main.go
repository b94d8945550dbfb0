package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"workrest/internal/config"
	"workrest/internal/core/timekeeper"
	"workrest/internal/logging"
	"workrest/internal/platform"
	"workrest/internal/storage"
	"workrest/internal/ui/animation"
	"workrest/internal/ui/preferences"
	"workrest/internal/ui/timerview"
	"workrest/internal/ui/tray"
	"workrest/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/viper"
)

const (
	appName  = "WorkRest"
	appID    = "com.example.workrestbalance"
	permWait = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "workrest: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	options, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))
	mobile := fyne.CurrentDevice().IsMobile()
	root := fyneApp.Storage().RootURI().Path()

	logs, err := logging.Setup(filepath.Join(root, "logs"), options.Log)
	if logs == nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer func() { _ = logs.Close() }()
	logger := logs.Logger
	if err != nil {
		logger.Warn("log level", "error", err)
	}

	if !mobile {
		guard, err := platform.AcquireSingleInstance(root, config.ConfigDir)
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is running")
			return nil
		}
		if err != nil {
			logger.Warn("single instance", "error", err)
		}
		defer func() { _ = guard.Release() }()
	}

	store, err := openStore(fyneApp, options, mobile)
	if err != nil {
		return err
	}
	settings, err := store.Load()
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}

	notifier := platform.NewNotifier(fyneApp, false)
	keeper := timekeeper.New(settings, timekeeper.Config{
		TickInterval: options.Timer.TickInterval,
		Notifier:     notifier,
		Vibrator:     platform.NewVibrator(),
		Store:        store,
		Logger:       logger,
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), permWait)
		defer cancel()
		granted := platform.NewPermissionFlow().RequestNotifications(ctx)
		notifier.SetEnabled(granted)
		logger.Info("notification permission", "granted", granted)
	}()

	view := timerview.New(timerview.Options{Smoothing: animation.DefaultConfig()}, timerview.Callbacks{
		OnToggle: keeper.Toggle,
		OnReset:  keeper.Reset,
		OnMode:   keeper.SetMode,
	})
	settingsPanel := preferences.New(keeper.Configuration(), keeper.SetConfiguration)

	timerTab := container.NewTabItem("Timer", view.Content())
	settingsTab := container.NewTabItem("Settings", settingsPanel.Content())
	tabs := container.NewAppTabs(timerTab, settingsTab)
	tabs.SetTabLocation(container.TabLocationBottom)

	window := fyneApp.NewWindow(appName)
	window.SetContent(tabs)
	window.Resize(fyne.NewSize(420, 640))
	window.SetMaster()

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok && !mobile {
		trayManager = tray.New(desktopApp, appName, tray.Callbacks{
			OnToggle: keeper.Toggle,
			OnReset:  keeper.Reset,
			OnMode:   keeper.SetMode,
			OnSettings: func() {
				tabs.Select(settingsTab)
				window.Show()
				window.RequestFocus()
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.TrayIcon))
		window.SetCloseIntercept(window.Hide)
	}

	render := func(snapshot timekeeper.Snapshot) {
		view.Update(snapshot)
		if trayManager != nil {
			trayManager.Update(snapshot)
		}
	}
	render(keeper.Snapshot())

	events := keeper.Subscribe(16)
	go forward(events, render, logger)

	fyneApp.Lifecycle().SetOnStopped(keeper.Close)

	window.ShowAndRun()
	keeper.Close()
	return nil
}

func openStore(fyneApp fyne.App, options *config.Options, mobile bool) (storage.Store, error) {
	path := options.Settings.Path
	if path == "" && !mobile {
		var err error
		if path, err = storage.DefaultYAMLPath(config.ConfigDir); err != nil {
			path = filepath.Join(fyneApp.Storage().RootURI().Path(), "settings.yaml")
		}
	}
	store, err := storage.Open(options.Settings.Backend, storage.Target{
		Preferences: fyneApp.Preferences(),
		Mobile:      mobile,
		YAMLPath:    path,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return store, nil
}

// forward renders events on the fyne main thread until the keeper closes.
func forward(events <-chan timekeeper.Event, render func(timekeeper.Snapshot), logger *slog.Logger) {
	for event := range events {
		if event.Type == timekeeper.EventTransitioned {
			logger.Debug("period transitioned", "from", event.Previous, "to", event.Snapshot.Mode)
		}
		snapshot := event.Snapshot
		fyne.Do(func() { render(snapshot) })
	}
}
