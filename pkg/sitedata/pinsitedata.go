package sitedata

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// PinSiteData holds a SiteData per pin. Pins may cover different sites.
// A PinSiteData is never modified after construction; per-pin SiteData
// instances may be shared with other containers.
type PinSiteData[T any] struct {
	pins []string
	data map[string]*SiteData[T]
}

func newPinSiteData[T any](pins []string, data map[string]*SiteData[T]) *PinSiteData[T] {
	return &PinSiteData[T]{pins: pins, data: data}
}

// NewFromSiteData pairs pin names with per-pin SiteData by position.
func NewFromSiteData[T any](pins []string, perPin []*SiteData[T]) (*PinSiteData[T], error) {
	const op = "NewFromSiteData"
	if len(pins) != len(perPin) {
		return nil, argumentErrorf(op, "%d pin names but %d SiteData values", len(pins), len(perPin))
	}
	if err := validatePins(op, pins); err != nil {
		return nil, err
	}
	data := make(map[string]*SiteData[T], len(pins))
	for i, pin := range pins {
		if perPin[i] == nil {
			return nil, argumentErrorf(op, "nil SiteData for pin %q", pin)
		}
		data[pin] = perPin[i]
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// NewFromPinMap builds a PinSiteData from pin -> site -> value.
// Pins are ordered by name and sites ascending.
func NewFromPinMap[T any](m map[string]map[int]T) (*PinSiteData[T], error) {
	const op = "NewFromPinMap"
	pins := make([]string, 0, len(m))
	for pin := range m {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	if err := validatePins(op, pins); err != nil {
		return nil, err
	}
	data := make(map[string]*SiteData[T], len(pins))
	for _, pin := range pins {
		sd, err := NewFromMap(m[pin])
		if err != nil {
			return nil, err
		}
		data[pin] = sd
	}
	return newPinSiteData(pins, data), nil
}

// NewPinSiteGrid builds a PinSiteData from a pin-major jagged slice:
// perPinPerSite[i][j] is the value of pins[i] at sites[j].
func NewPinSiteGrid[T any](pins []string, sites []int, perPinPerSite [][]T) (*PinSiteData[T], error) {
	const op = "NewPinSiteGrid"
	if err := validateGrid(op, pins, sites); err != nil {
		return nil, err
	}
	if len(perPinPerSite) != len(pins) {
		return nil, argumentErrorf(op, "%d pin names but %d rows", len(pins), len(perPinPerSite))
	}
	data := make(map[string]*SiteData[T], len(pins))
	for i, pin := range pins {
		row := perPinPerSite[i]
		if len(row) != len(sites) {
			return nil, argumentErrorf(op, "row for pin %q has %d values, want %d", pin, len(row), len(sites))
		}
		data[pin] = siteDataFromSlice(sites, func(j int) T { return row[j] })
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// NewSitePinGrid builds a PinSiteData from a site-major jagged slice:
// perSitePerPin[i][j] is the value of pins[j] at sites[i].
func NewSitePinGrid[T any](sites []int, pins []string, perSitePerPin [][]T) (*PinSiteData[T], error) {
	const op = "NewSitePinGrid"
	if err := validateGrid(op, pins, sites); err != nil {
		return nil, err
	}
	if len(perSitePerPin) != len(sites) {
		return nil, argumentErrorf(op, "%d site numbers but %d rows", len(sites), len(perSitePerPin))
	}
	for i, row := range perSitePerPin {
		if len(row) != len(pins) {
			return nil, argumentErrorf(op, "row for site %d has %d values, want %d", sites[i], len(row), len(pins))
		}
	}
	data := make(map[string]*SiteData[T], len(pins))
	for j, pin := range pins {
		data[pin] = siteDataFromSlice(sites, func(i int) T { return perSitePerPin[i][j] })
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// NewPinBroadcast maps every pin and site to value.
func NewPinBroadcast[T any](pins []string, sites []int, value T) (*PinSiteData[T], error) {
	const op = "NewPinBroadcast"
	if err := validateGrid(op, pins, sites); err != nil {
		return nil, err
	}
	shared := siteDataFromSlice(sites, func(int) T { return value })
	data := make(map[string]*SiteData[T], len(pins))
	for _, pin := range pins {
		data[pin] = shared
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// NewPerPin repeats perPin[i] across all sites for pins[i].
func NewPerPin[T any](pins []string, sites []int, perPin []T) (*PinSiteData[T], error) {
	const op = "NewPerPin"
	if err := validateGrid(op, pins, sites); err != nil {
		return nil, err
	}
	if len(perPin) != len(pins) {
		return nil, argumentErrorf(op, "%d pin names but %d values", len(pins), len(perPin))
	}
	data := make(map[string]*SiteData[T], len(pins))
	for i, pin := range pins {
		v := perPin[i]
		data[pin] = siteDataFromSlice(sites, func(int) T { return v })
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// NewPerPinMap repeats each pin's value across all sites. Pins are ordered
// by name.
func NewPerPinMap[T any](sites []int, perPin map[string]T) (*PinSiteData[T], error) {
	pins := make([]string, 0, len(perPin))
	for pin := range perPin {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	values := make([]T, len(pins))
	for i, pin := range pins {
		values[i] = perPin[pin]
	}
	return NewPerPin(pins, sites, values)
}

// NewPerSite repeats perSite[i] across all pins for sites[i].
func NewPerSite[T any](sites []int, pins []string, perSite []T) (*PinSiteData[T], error) {
	const op = "NewPerSite"
	if err := validateGrid(op, pins, sites); err != nil {
		return nil, err
	}
	if len(perSite) != len(sites) {
		return nil, argumentErrorf(op, "%d site numbers but %d values", len(sites), len(perSite))
	}
	shared := siteDataFromSlice(sites, func(i int) T { return perSite[i] })
	data := make(map[string]*SiteData[T], len(pins))
	for _, pin := range pins {
		data[pin] = shared
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

func validateGrid(op string, pins []string, sites []int) error {
	if err := validatePins(op, pins); err != nil {
		return err
	}
	return validateSites(op, sites)
}

// siteDataFromSlice builds a SiteData over validated sites.
func siteDataFromSlice[T any](sites []int, value func(i int) T) *SiteData[T] {
	explicit := make([]int, 0, len(sites))
	m := make(map[int]T, len(sites))
	for i, s := range sites {
		if s != SystemSite {
			explicit = append(explicit, s)
		}
		m[s] = value(i)
	}
	return newSiteData(explicit, m)
}

// PinNames returns the pin names in construction order.
func (p *PinSiteData[T]) PinNames() []string {
	return slices.Clone(p.pins)
}

// SiteNumbers returns the union of the pins' explicit sites in first-seen
// order. System pins contribute no sites.
func (p *PinSiteData[T]) SiteNumbers() []int {
	var sites []int
	for _, pin := range p.pins {
		sites = unionSites(sites, p.data[pin].sites)
	}
	if sites == nil {
		return []int{}
	}
	return sites
}

// Len returns the number of pins.
func (p *PinSiteData[T]) Len() int { return len(p.pins) }

// HasPin reports whether pin is present.
func (p *PinSiteData[T]) HasPin(pin string) bool {
	_, ok := p.data[pin]
	return ok
}

// IsSystemPin reports whether pin holds only a system value.
func (p *PinSiteData[T]) IsSystemPin(pin string) bool {
	sd, ok := p.data[pin]
	return ok && sd.IsSystemOnly()
}

// GetValue returns the value of pin at site, falling back to the pin's
// system value.
func (p *PinSiteData[T]) GetValue(site int, pin string) (T, error) {
	var zero T
	sd, ok := p.data[pin]
	if !ok {
		return zero, pinNotFound(pin)
	}
	v, ok := sd.lookup(site)
	if !ok {
		return zero, siteNotFound(site, pin)
	}
	return v, nil
}

// ExtractSite returns every pin's value at site. It fails without a partial
// result if any pin cannot be resolved.
func (p *PinSiteData[T]) ExtractSite(site int) (map[string]T, error) {
	out := make(map[string]T, len(p.pins))
	for _, pin := range p.pins {
		v, ok := p.data[pin].lookup(site)
		if !ok {
			return nil, siteNotFound(site, pin)
		}
		out[pin] = v
	}
	return out, nil
}

// ExtractPin returns the SiteData stored for pin.
func (p *PinSiteData[T]) ExtractPin(pin string) (*SiteData[T], error) {
	sd, ok := p.data[pin]
	if !ok {
		return nil, pinNotFound(pin)
	}
	return sd, nil
}

// ExtractPins returns a PinSiteData restricted to pins, in the given order.
// All missing names are reported together.
func (p *PinSiteData[T]) ExtractPins(pins []string) (*PinSiteData[T], error) {
	const op = "ExtractPins"
	if err := validatePins(op, pins); err != nil {
		return nil, err
	}
	var missing []string
	data := make(map[string]*SiteData[T], len(pins))
	for _, pin := range pins {
		sd, ok := p.data[pin]
		if !ok {
			missing = append(missing, pin)
			continue
		}
		data[pin] = sd
	}
	if len(missing) > 0 {
		return nil, argumentErrorf(op, "pins not found: %s", quoteAll(missing))
	}
	return newPinSiteData(slices.Clone(pins), data), nil
}

// Combine returns the union of p and other. A pin present in both has its
// site maps merged; any site number present on both sides, including the
// system value, is rejected.
func (p *PinSiteData[T]) Combine(other *PinSiteData[T]) (*PinSiteData[T], error) {
	const op = "Combine"
	if other == nil {
		return nil, argumentErrorf(op, "nil PinSiteData")
	}
	pins := unionPins(p.pins, other.pins)
	data := make(map[string]*SiteData[T], len(pins))
	for _, pin := range pins {
		a, inP := p.data[pin]
		b, inOther := other.data[pin]
		switch {
		case !inOther:
			data[pin] = a
		case !inP:
			data[pin] = b
		default:
			merged, err := mergeSiteData(a, b)
			if err != nil {
				return nil, argumentErrorf(op, "pin %q: %v", pin, err)
			}
			data[pin] = merged
		}
	}
	return newPinSiteData(pins, data), nil
}

func mergeSiteData[T any](a, b *SiteData[T]) (*SiteData[T], error) {
	var overlap []string
	for site := range b.values {
		if _, dup := a.values[site]; dup {
			overlap = append(overlap, siteLabel(site))
		}
	}
	if len(overlap) > 0 {
		sort.Strings(overlap)
		return nil, fmt.Errorf("overlapping %s", strings.Join(overlap, ", "))
	}
	values := make(map[int]T, len(a.values)+len(b.values))
	for site, v := range a.values {
		values[site] = v
	}
	for site, v := range b.values {
		values[site] = v
	}
	sites := append(slices.Clone(a.sites), b.sites...)
	return newSiteData(sites, values), nil
}

// String returns one line per pin, e.g. "VCC1: [0:1.5 1:2]".
func (p *PinSiteData[T]) String() string {
	var b strings.Builder
	for i, pin := range p.pins {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", pin, p.data[pin])
	}
	return b.String()
}
