package log

// Logger receives result events from step contexts.
// Pass nil or NoopLogger to disable result capture.
type Logger interface {
	// Log records a result event. Implementations must be thread-safe.
	// Publishing blocks on Log, so slow sinks should queue.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
