package sitedata

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// SiteData holds one value per site and an optional system value.
// A SiteData is never modified after construction.
type SiteData[T any] struct {
	sites  []int     // explicit sites in construction order, never SystemSite
	values map[int]T // explicit sites plus SystemSite when present
}

// newSiteData wraps already-validated data without copying.
func newSiteData[T any](sites []int, values map[int]T) *SiteData[T] {
	return &SiteData[T]{sites: sites, values: values}
}

// New returns a SiteData assigning values to sites 0..len(values)-1.
func New[T any](values []T) *SiteData[T] {
	sites := make([]int, len(values))
	m := make(map[int]T, len(values))
	for i, v := range values {
		sites[i] = i
		m[i] = v
	}
	return newSiteData(sites, m)
}

// NewFromSites pairs sites and values by position.
// A site of SystemSite stores the system value.
func NewFromSites[T any](sites []int, values []T) (*SiteData[T], error) {
	const op = "NewFromSites"
	if len(sites) != len(values) {
		return nil, argumentErrorf(op, "%d site numbers but %d values", len(sites), len(values))
	}
	if err := validateSites(op, sites); err != nil {
		return nil, err
	}
	explicit := make([]int, 0, len(sites))
	m := make(map[int]T, len(sites))
	for i, s := range sites {
		if s != SystemSite {
			explicit = append(explicit, s)
		}
		m[s] = values[i]
	}
	return newSiteData(explicit, m), nil
}

// NewBroadcast maps every site to value.
func NewBroadcast[T any](sites []int, value T) (*SiteData[T], error) {
	const op = "NewBroadcast"
	if err := validateSites(op, sites); err != nil {
		return nil, err
	}
	explicit := make([]int, 0, len(sites))
	m := make(map[int]T, len(sites))
	for _, s := range sites {
		if s != SystemSite {
			explicit = append(explicit, s)
		}
		m[s] = value
	}
	return newSiteData(explicit, m), nil
}

// NewFromMap copies m. Sites are ordered ascending.
func NewFromMap[T any](m map[int]T) (*SiteData[T], error) {
	const op = "NewFromMap"
	explicit := make([]int, 0, len(m))
	for s := range m {
		if err := validateSite(op, s); err != nil {
			return nil, err
		}
		if s != SystemSite {
			explicit = append(explicit, s)
		}
	}
	slices.Sort(explicit)
	return newSiteData(explicit, maps.Clone(m)), nil
}

// NewSystem returns a SiteData holding only a system value.
func NewSystem[T any](value T) *SiteData[T] {
	return newSiteData([]int{}, map[int]T{SystemSite: value})
}

// GetValue returns the value for site, falling back to the system value.
func (s *SiteData[T]) GetValue(site int) (T, error) {
	if v, ok := s.lookup(site); ok {
		return v, nil
	}
	var zero T
	return zero, siteNotFound(site, "")
}

// lookup resolves site through the system value. Looking up SystemSite
// returns the system value only.
func (s *SiteData[T]) lookup(site int) (T, bool) {
	if v, ok := s.values[site]; ok {
		return v, true
	}
	v, ok := s.values[SystemSite]
	return v, ok
}

// SiteNumbers returns the explicit site numbers in construction order.
// SystemSite is never included.
func (s *SiteData[T]) SiteNumbers() []int {
	return slices.Clone(s.sites)
}

// SystemValue returns the system value if one is present.
func (s *SiteData[T]) SystemValue() (T, bool) {
	v, ok := s.values[SystemSite]
	return v, ok
}

// HasSystemValue reports whether a system value is present.
func (s *SiteData[T]) HasSystemValue() bool {
	_, ok := s.values[SystemSite]
	return ok
}

// IsSystemOnly reports whether the system value is the only entry.
func (s *SiteData[T]) IsSystemOnly() bool {
	return len(s.sites) == 0 && s.HasSystemValue()
}

// Len returns the number of stored entries, including the system value.
func (s *SiteData[T]) Len() int { return len(s.values) }

// ToMap returns a copy of the stored entries keyed by site number.
func (s *SiteData[T]) ToMap() map[int]T {
	return maps.Clone(s.values)
}

// ExtractSites returns a SiteData holding the given sites, each resolved
// through the system value. It fails if any site cannot be resolved.
func (s *SiteData[T]) ExtractSites(sites []int) (*SiteData[T], error) {
	const op = "ExtractSites"
	if err := validateSites(op, sites); err != nil {
		return nil, err
	}
	explicit := make([]int, 0, len(sites))
	m := make(map[int]T, len(sites))
	for _, site := range sites {
		v, ok := s.lookup(site)
		if !ok {
			return nil, siteNotFound(site, "")
		}
		if site != SystemSite {
			explicit = append(explicit, site)
		}
		m[site] = v
	}
	return newSiteData(explicit, m), nil
}

// keys returns the explicit sites followed by SystemSite when present.
func (s *SiteData[T]) keys() []int {
	if !s.HasSystemValue() {
		return s.sites
	}
	return append(slices.Clone(s.sites), SystemSite)
}

// String returns a compact representation such as "[0:1.5 1:2 system:3]".
func (s *SiteData[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, site := range s.keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if site == SystemSite {
			b.WriteString("system")
		} else {
			fmt.Fprintf(&b, "%d", site)
		}
		fmt.Fprintf(&b, ":%v", s.values[site])
	}
	b.WriteByte(']')
	return b.String()
}
