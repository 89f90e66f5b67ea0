package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, level slog.Level, adapt func(*slog.Logger) *SlogAdapter, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	adapt(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		return nil
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsPublishEvent(t *testing.T) {
	entry := logOne(t, slog.LevelDebug, NewSlogAdapter, Event{
		Timestamp: time.Now(),
		StepID:    "step-123",
		StepName:  "continuity",
		Kind:      KindPublish,
		Result:    &ResultEvent{DataID: "Vout", Site: 2, Pin: "VCC1", Type: ValueFloat, Value: 1.5},
	})
	if entry == nil {
		t.Fatal("no output produced")
	}

	want := map[string]any{
		"msg":     "result",
		"step_id": "step-123",
		"step":    "continuity",
		"kind":    "PUBLISH",
		"data_id": "Vout",
		"site":    "2",
		"pin":     "VCC1",
		"type":    "FLOAT",
		"value":   1.5,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsSystemSite(t *testing.T) {
	entry := logOne(t, slog.LevelDebug, NewSlogAdapter, Event{
		Kind:   KindPublish,
		Result: &ResultEvent{DataID: "Isupply", Site: -1},
	})
	if entry["site"] != "system" {
		t.Errorf("site: got %v, want system", entry["site"])
	}
	if _, ok := entry["pin"]; ok {
		t.Error("pin should be omitted for per-site results")
	}
}

func TestSlogAdapterLogsShareEvent(t *testing.T) {
	entry := logOne(t, slog.LevelDebug, NewSlogAdapter, Event{
		Kind:  KindShare,
		Share: &ShareEvent{ID: "trim", Sites: 4, Pins: 2, Size: 40},
	})
	if entry["data_id"] != "trim" || entry["sites"] != float64(4) || entry["pins"] != float64(2) {
		t.Errorf("unexpected share attributes: %v", entry)
	}
}

func TestSlogAdapterLogsErrorEvent(t *testing.T) {
	entry := logOne(t, slog.LevelDebug, NewSlogAdapter, Event{
		Kind:  KindError,
		Error: &ErrorEventData{Message: "site 3 not found", Context: "PublishResults"},
	})
	if entry["error_msg"] != "site 3 not found" || entry["error_context"] != "PublishResults" {
		t.Errorf("unexpected error attributes: %v", entry)
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	event := Event{Kind: KindPublish, Result: &ResultEvent{DataID: "x"}}

	if entry := logOne(t, slog.LevelInfo, NewSlogAdapter, event); entry != nil {
		t.Errorf("debug event should be filtered at info level, got %v", entry)
	}

	atInfo := func(l *slog.Logger) *SlogAdapter { return NewSlogAdapter(l).WithLevel(slog.LevelInfo) }
	entry := logOne(t, slog.LevelInfo, atInfo, event)
	if entry == nil || entry["level"] != "INFO" {
		t.Errorf("expected INFO entry, got %v", entry)
	}
}
