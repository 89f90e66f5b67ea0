package sitedata

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewAssignsSequentialSites(t *testing.T) {
	s := New([]float64{1.5, 2.5, 3.5})

	if got := s.SiteNumbers(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("SiteNumbers: got %v, want [0 1 2]", got)
	}
	for site, want := range []float64{1.5, 2.5, 3.5} {
		got, err := s.GetValue(site)
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", site, err)
		}
		if got != want {
			t.Errorf("GetValue(%d): got %v, want %v", site, got, want)
		}
	}
}

func TestNewAcceptsEmpty(t *testing.T) {
	s := New([]int{})
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
	if len(s.SiteNumbers()) != 0 {
		t.Errorf("SiteNumbers: got %v, want empty", s.SiteNumbers())
	}
}

func TestNewFromSitesRoundTrip(t *testing.T) {
	sites := []int{3, 1, 7, 0}
	values := []string{"c", "a", "g", "z"}

	s, err := NewFromSites(sites, values)
	if err != nil {
		t.Fatalf("NewFromSites failed: %v", err)
	}
	if got := s.SiteNumbers(); !reflect.DeepEqual(got, sites) {
		t.Errorf("SiteNumbers: got %v, want %v", got, sites)
	}
	for i, site := range sites {
		got, err := s.GetValue(site)
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", site, err)
		}
		if got != values[i] {
			t.Errorf("GetValue(%d): got %q, want %q", site, got, values[i])
		}
	}
}

func TestNewFromSitesRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		sites  []int
		values []float64
	}{
		{"length mismatch", []int{0, 1}, []float64{1}},
		{"duplicate site", []int{2, 2, 3}, []float64{1, 2, 3}},
		{"duplicate system site", []int{SystemSite, SystemSite}, []float64{1, 2}},
		{"negative site", []int{0, -2}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromSites(tt.sites, tt.values)
			if !errors.Is(err, ErrArgument) {
				t.Fatalf("expected ErrArgument, got %v", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected *ArgumentError, got %T", err)
			}
			if argErr.Op != "NewFromSites" {
				t.Errorf("Op: got %q, want NewFromSites", argErr.Op)
			}
		})
	}
}

func TestNewBroadcast(t *testing.T) {
	sites := []int{4, 2, 9}
	s, err := NewBroadcast(sites, 0.25)
	if err != nil {
		t.Fatalf("NewBroadcast failed: %v", err)
	}
	for _, site := range sites {
		got, err := s.GetValue(site)
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", site, err)
		}
		if got != 0.25 {
			t.Errorf("GetValue(%d): got %v, want 0.25", site, got)
		}
	}

	if _, err := NewBroadcast([]int{1, 1}, 0.25); !errors.Is(err, ErrArgument) {
		t.Errorf("duplicate sites: expected ErrArgument, got %v", err)
	}
}

func TestNewFromMapOrdersSites(t *testing.T) {
	s, err := NewFromMap(map[int]int{5: 50, 1: 10, 3: 30, SystemSite: 99})
	if err != nil {
		t.Fatalf("NewFromMap failed: %v", err)
	}
	if got := s.SiteNumbers(); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("SiteNumbers: got %v, want [1 3 5]", got)
	}
	if v, ok := s.SystemValue(); !ok || v != 99 {
		t.Errorf("SystemValue: got %v, %v; want 99, true", v, ok)
	}

	if _, err := NewFromMap(map[int]int{-3: 1}); !errors.Is(err, ErrArgument) {
		t.Errorf("negative site: expected ErrArgument, got %v", err)
	}
}

func TestNewFromMapCopiesInput(t *testing.T) {
	m := map[int]int{0: 1}
	s, err := NewFromMap(m)
	if err != nil {
		t.Fatalf("NewFromMap failed: %v", err)
	}
	m[0] = 2
	if v, _ := s.GetValue(0); v != 1 {
		t.Errorf("container changed with its input map: got %d, want 1", v)
	}
}

func TestSystemOnlyAnswersEverySite(t *testing.T) {
	s := NewSystem(-22.5)

	if !s.IsSystemOnly() {
		t.Error("IsSystemOnly: got false, want true")
	}
	if len(s.SiteNumbers()) != 0 {
		t.Errorf("SiteNumbers: got %v, want empty", s.SiteNumbers())
	}
	for _, site := range []int{0, 1, 7, 1000, SystemSite} {
		got, err := s.GetValue(site)
		if err != nil {
			t.Fatalf("GetValue(%d) failed: %v", site, err)
		}
		if got != -22.5 {
			t.Errorf("GetValue(%d): got %v, want -22.5", site, got)
		}
	}
}

func TestSystemValueIsFallback(t *testing.T) {
	s, err := NewFromSites([]int{0, SystemSite}, []int{1, 9})
	if err != nil {
		t.Fatalf("NewFromSites failed: %v", err)
	}
	if s.IsSystemOnly() {
		t.Error("IsSystemOnly: got true, want false")
	}
	if got, _ := s.GetValue(0); got != 1 {
		t.Errorf("GetValue(0): got %d, want 1", got)
	}
	if got, _ := s.GetValue(4); got != 9 {
		t.Errorf("GetValue(4): got %d, want 9", got)
	}
	if got := s.SiteNumbers(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("SiteNumbers: got %v, want [0]", got)
	}
}

func TestGetValueMissingSite(t *testing.T) {
	s := New([]float64{1, 2})

	_, err := s.GetValue(4)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	var keyErr *KeyNotFoundError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected *KeyNotFoundError, got %T", err)
	}
	if !keyErr.HasSite() || keyErr.Site != 4 || keyErr.Pin != "" {
		t.Errorf("KeyNotFoundError: got %+v", keyErr)
	}
	if got, want := err.Error(), "sitedata: site 4 not found"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}

func TestExtractSites(t *testing.T) {
	s, _ := NewFromSites([]int{0, 1, SystemSite}, []int{10, 11, 99})

	sub, err := s.ExtractSites([]int{1, 5})
	if err != nil {
		t.Fatalf("ExtractSites failed: %v", err)
	}
	want := map[int]int{1: 11, 5: 99}
	if got := sub.ToMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSites: got %v, want %v", got, want)
	}

	if _, err := New([]int{1}).ExtractSites([]int{0, 3}); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSiteNumbersReturnsCopy(t *testing.T) {
	s := New([]int{1, 2})
	sites := s.SiteNumbers()
	sites[0] = 42
	if got := s.SiteNumbers(); got[0] != 0 {
		t.Errorf("SiteNumbers aliased internal state: got %v", got)
	}
}

func TestSiteDataString(t *testing.T) {
	s, _ := NewFromSites([]int{0, 1, SystemSite}, []float64{1.5, 2, 3})
	if got, want := s.String(), "[0:1.5 1:2 system:3]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
