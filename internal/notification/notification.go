// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/launchpad/internal/logger"
)

// notifyFunc matches beeep.Notify so tests can substitute it.
type notifyFunc func(title, message string, icon any) error

var (
	mu       sync.Mutex
	notifier notifyFunc = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	mu.Lock()
	fn := notifier
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Use empty string for icon - beeep handles platform defaults
	err := fn(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// Launched announces that an entry has been started.
func Launched(entryName string) error {
	return Send("Launchpad", "Launched "+entryName)
}
