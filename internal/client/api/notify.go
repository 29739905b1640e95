package api

// Level classifies a user-facing notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives transient user-facing notifications. The request client
// pushes exactly one notification for every failed request before returning
// the error, so the UI can show a toast while the caller decides how to
// react. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(level Level, message string)
}

// NopNotifier discards all notifications. Useful in tests and batch tools.
type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}
