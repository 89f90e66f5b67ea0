package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	r1, r2, r3 := &recordingLogger{}, &recordingLogger{}, &recordingLogger{}
	multi := NewMultiLogger(r1, r2, r3)

	multi.Log(Event{Timestamp: time.Now(), StepID: "step-1", Kind: KindPublish})

	for i, r := range []*recordingLogger{r1, r2, r3} {
		if len(r.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(r.events))
			continue
		}
		if r.events[0].StepID != "step-1" {
			t.Errorf("logger %d: StepID = %q, want step-1", i, r.events[0].StepID)
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	r := &recordingLogger{}
	multi := NewMultiLogger(nil, r, nil)

	multi.Log(Event{})
	multi.Log(Event{})

	if len(r.events) != 2 {
		t.Errorf("got %d events, want 2", len(r.events))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{})
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{Kind: KindError})
}
