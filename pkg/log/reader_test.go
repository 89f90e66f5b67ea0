package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTestResultFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test result file: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func publish(ts time.Time, step, dataID string, site int, pin string, value float64) Event {
	return Event{
		Timestamp: ts,
		StepID:    step,
		Kind:      KindPublish,
		Result:    &ResultEvent{DataID: dataID, Site: site, Pin: pin, Value: value},
	}
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		publish(base, "s1", "Vout", 0, "VCC1", 1.0),
		publish(base.Add(time.Second), "s1", "Vout", 1, "VCC1", 1.1),
		publish(base.Add(2*time.Second), "s1", "Iq", 0, "VCC2", 0.002),
		{Timestamp: base.Add(3 * time.Second), StepID: "s2", Kind: KindShare, Share: &ShareEvent{ID: "Vout", Sites: 2}},
		{Timestamp: base.Add(4 * time.Second), StepID: "s2", Kind: KindError, Error: &ErrorEventData{Message: "boom"}},
	}
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return events
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestResultFile(t, sampleEvents(time.Now()))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 5 {
		t.Fatalf("got %d events, want 5", len(read))
	}
	if read[0].Result.Pin != "VCC1" {
		t.Errorf("first event pin = %q, want VCC1", read[0].Result.Pin)
	}
	if read[4].Kind != KindError {
		t.Errorf("last event kind = %v, want ERROR", read[4].Kind)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestResultFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.rlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path := createTestResultFile(t, sampleEvents(base))

	publishKind := KindPublish
	site1 := 1
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 5},
		{"step", Filter{StepID: "s2"}, 2},
		{"kind", Filter{Kind: &publishKind}, 3},
		{"data id matches publish and share", Filter{DataID: "Vout"}, 3},
		{"pin", Filter{Pin: "VCC1"}, 2},
		{"site", Filter{Site: &site1}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{DataID: "Vout", Kind: &publishKind, Pin: "VCC1"}, 2},
		{"no match", Filter{StepID: "s9"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(readAll(t, path, tt.filter)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestFilterStepName(t *testing.T) {
	f := Filter{StepName: "trim"}
	if f.Matches(Event{StepName: "continuity"}) {
		t.Error("step name mismatch should not match")
	}
	if !f.Matches(Event{StepName: "trim"}) {
		t.Error("step name should match")
	}
}

func TestReaderStopsAtMalformedEvent(t *testing.T) {
	path := createTestResultFile(t, sampleEvents(time.Now()))

	// Append a publish event without a result, bypassing FileLogger.
	bad, err := resultEncMode.Marshal(Event{Timestamp: time.Now(), Kind: KindPublish})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if _, err := f.Write(bad); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if !errors.Is(err, ErrMalformedEvent) {
		t.Fatalf("expected ErrMalformedEvent, got %v", err)
	}
	if len(events) != len(sampleEvents(time.Now())) {
		t.Errorf("got %d events before the malformed one, want %d", len(events), len(sampleEvents(time.Now())))
	}
}
