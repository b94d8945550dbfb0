package platform

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Notifier posts notifications through the fyne app.
type Notifier struct {
	app     fyne.App
	mu      sync.Mutex
	enabled bool
}

// NewNotifier returns a notifier that is a no-op while enabled is false.
func NewNotifier(app fyne.App, enabled bool) *Notifier {
	return &Notifier{app: app, enabled: enabled}
}

// SetEnabled toggles delivery, typically after the permission flow completes.
func (notifier *Notifier) SetEnabled(enabled bool) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.enabled = enabled
}

// Notify sends a notification. Delivery is fire-and-forget.
func (notifier *Notifier) Notify(title, body string) error {
	notifier.mu.Lock()
	enabled := notifier.enabled
	notifier.mu.Unlock()
	if !enabled || notifier.app == nil {
		return nil
	}
	notifier.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}
