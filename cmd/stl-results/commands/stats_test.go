package commands

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/semitest/stl-go/pkg/log"
)

func TestCollectStats(t *testing.T) {
	path := createTestResultFile(t, sampleEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 10 {
		t.Errorf("TotalEvents = %d, want 10", stats.TotalEvents)
	}
	wantKinds := map[log.Kind]int{log.KindPublish: 7, log.KindShare: 1, log.KindRetrieve: 1, log.KindError: 1}
	if !reflect.DeepEqual(stats.EventsByKind, wantKinds) {
		t.Errorf("EventsByKind = %v, want %v", stats.EventsByKind, wantKinds)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}

	if len(stats.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(stats.Steps))
	}
	a := stats.Steps[stepA]
	if a.Name != "continuity" || a.Events != 4 || a.Results != 3 {
		t.Errorf("step A = %+v", a)
	}
	b := stats.Steps[stepB]
	if b.Name != "idd" || b.Events != 6 || b.Results != 4 {
		t.Errorf("step B = %+v", b)
	}
}

func TestCollectStatsPerPin(t *testing.T) {
	path := createTestResultFile(t, sampleEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	ds := stats.Data["Continuity"]
	if ds == nil {
		t.Fatal("missing Continuity stats")
	}
	if ds.Type != log.ValueFloat || ds.Events != 3 {
		t.Errorf("Continuity type/events = %s/%d", ds.Type, ds.Events)
	}
	if ds.Sites != nil {
		t.Errorf("expected no per-site series, got %+v", ds.Sites)
	}
	p := ds.Pins
	if p == nil {
		t.Fatal("missing per-pin series")
	}
	if p.Min != 0.5 || !reflect.DeepEqual(p.MinAt, []string{"VCC1@0"}) {
		t.Errorf("min = %v at %v", p.Min, p.MinAt)
	}
	if p.Max != 0.7 || !reflect.DeepEqual(p.MaxAt, []string{"VCC1@1", "VDET@0"}) {
		t.Errorf("max = %v at %v", p.Max, p.MaxAt)
	}
	if math.Abs(p.PinMeans["VCC1"]-0.6) > 1e-12 || p.PinMeans["VDET"] != 0.7 {
		t.Errorf("pin means = %v", p.PinMeans)
	}
}

func TestCollectStatsPerSite(t *testing.T) {
	path := createTestResultFile(t, sampleEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	idd := stats.Data["Idd"]
	if idd == nil || idd.Sites == nil {
		t.Fatal("missing Idd per-site stats")
	}
	if idd.Pins != nil {
		t.Errorf("expected no per-pin series, got %+v", idd.Pins)
	}
	s := idd.Sites
	if s.Min != 3 || !reflect.DeepEqual(s.MinAt, []string{"0"}) {
		t.Errorf("min = %v at %v", s.Min, s.MinAt)
	}
	if s.Max != 5 || !reflect.DeepEqual(s.MaxAt, []string{"1", "2"}) {
		t.Errorf("max = %v at %v", s.Max, s.MaxAt)
	}
	if math.Abs(s.Mean-13.0/3) > 1e-12 {
		t.Errorf("mean = %v", s.Mean)
	}

	supply := stats.Data["Supply"]
	if supply == nil || supply.Sites == nil {
		t.Fatal("missing Supply stats")
	}
	if !reflect.DeepEqual(supply.Sites.MaxAt, []string{"system"}) || supply.Sites.Mean != 1 {
		t.Errorf("system series = %+v", supply.Sites)
	}
}

func TestCollectStatsLatestValueWins(t *testing.T) {
	events := sampleEvents()
	last := events[len(events)-1].Timestamp
	events = append(events, publish(last.Add(1), stepB, "idd", "Idd", 0, "", log.ValueInt, 9))
	path := createTestResultFile(t, events)

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	idd := stats.Data["Idd"]
	if idd.Events != 4 {
		t.Errorf("Events = %d, want 4", idd.Events)
	}
	if idd.Sites.Min != 5 || idd.Sites.Max != 9 {
		t.Errorf("min/max = %v/%v, want 5/9", idd.Sites.Min, idd.Sites.Max)
	}
}

func TestRunStats(t *testing.T) {
	path := createTestResultFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"=== Step Result Statistics ===",
		"Total Events: 10",
		"PUBLISH:",
		"Steps: 2",
		"[11111111] 4 events, 3 results",
		"Name: continuity",
		"Data IDs: 3",
		"Continuity (FLOAT, 3 values)",
		"Max:  0.7 at VCC1@1, VDET@0",
		"Mean VCC1: 0.6",
		"Idd (INT, 3 values)",
		"Max:  5 at 1, 2",
		"Mean: 4.33333",
		"Supply (BOOL, 1 values)",
		"Max:  true at system",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestResultFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Total Events: 0") {
		t.Errorf("expected zero events, got:\n%s", output)
	}
	if strings.Contains(output, "Time Range") {
		t.Errorf("expected no time range for empty file, got:\n%s", output)
	}
}
