package sitedata

import (
	"slices"
	"sort"
)

// SiteOperand is the right-hand side of a SiteData operation: Scalar,
// PerSite or *SiteData.
type SiteOperand[T any] interface {
	// siteKeys returns the explicit sites, whether a system value is
	// present, and whether the operand is keyed by site at all.
	siteKeys() (sites []int, system bool, keyed bool)
	// valueAt resolves site, falling back to the system value.
	valueAt(site int) (T, bool)
}

// PinSiteOperand is the right-hand side of a PinSiteData operation:
// Scalar, PerSite, PerPin, *SiteData or *PinSiteData.
type PinSiteOperand[T any] interface {
	// pinKeys returns the pins and whether the operand is keyed by pin.
	pinKeys() (pins []string, keyed bool)
	// forPin returns the per-site view of pin.
	forPin(pin string) (SiteOperand[T], bool)
}

// ScalarOperand applies one value to every key.
type ScalarOperand[T any] struct {
	value T
}

// Scalar returns an operand broadcasting v to every pin and site.
func Scalar[T any](v T) ScalarOperand[T] {
	return ScalarOperand[T]{value: v}
}

// Value returns the broadcast value.
func (s ScalarOperand[T]) Value() T { return s.value }

func (s ScalarOperand[T]) siteKeys() ([]int, bool, bool) { return nil, false, false }

func (s ScalarOperand[T]) valueAt(int) (T, bool) { return s.value, true }

func (s ScalarOperand[T]) pinKeys() ([]string, bool) { return nil, false }

func (s ScalarOperand[T]) forPin(string) (SiteOperand[T], bool) { return s, true }

// PerSite supplies one value per site. A SystemSite entry acts as the
// fallback for sites without an entry. It is broadcast across pins.
type PerSite[T any] map[int]T

func (m PerSite[T]) siteKeys() ([]int, bool, bool) {
	sites := make([]int, 0, len(m))
	for s := range m {
		if s != SystemSite {
			sites = append(sites, s)
		}
	}
	slices.Sort(sites)
	_, system := m[SystemSite]
	return sites, system, true
}

func (m PerSite[T]) valueAt(site int) (T, bool) {
	if v, ok := m[site]; ok {
		return v, true
	}
	v, ok := m[SystemSite]
	return v, ok
}

func (m PerSite[T]) pinKeys() ([]string, bool) { return nil, false }

func (m PerSite[T]) forPin(string) (SiteOperand[T], bool) { return m, true }

// PerPin supplies one value per pin, broadcast across sites.
type PerPin[T any] map[string]T

func (m PerPin[T]) pinKeys() ([]string, bool) {
	pins := make([]string, 0, len(m))
	for p := range m {
		pins = append(pins, p)
	}
	sort.Strings(pins)
	return pins, true
}

func (m PerPin[T]) forPin(pin string) (SiteOperand[T], bool) {
	v, ok := m[pin]
	if !ok {
		return nil, false
	}
	return Scalar(v), true
}

func (s *SiteData[T]) siteKeys() ([]int, bool, bool) {
	return s.sites, s.HasSystemValue(), true
}

func (s *SiteData[T]) valueAt(site int) (T, bool) { return s.lookup(site) }

func (s *SiteData[T]) pinKeys() ([]string, bool) { return nil, false }

func (s *SiteData[T]) forPin(string) (SiteOperand[T], bool) { return s, true }

func (p *PinSiteData[T]) pinKeys() ([]string, bool) { return p.pins, true }

func (p *PinSiteData[T]) forPin(pin string) (SiteOperand[T], bool) {
	sd, ok := p.data[pin]
	if !ok {
		return nil, false
	}
	return sd, true
}

// Compile-time interface satisfaction checks.
var (
	_ SiteOperand[int]    = ScalarOperand[int]{}
	_ SiteOperand[int]    = PerSite[int]{}
	_ SiteOperand[int]    = (*SiteData[int])(nil)
	_ PinSiteOperand[int] = ScalarOperand[int]{}
	_ PinSiteOperand[int] = PerSite[int]{}
	_ PinSiteOperand[int] = PerPin[int]{}
	_ PinSiteOperand[int] = (*SiteData[int])(nil)
	_ PinSiteOperand[int] = (*PinSiteData[int])(nil)
)
