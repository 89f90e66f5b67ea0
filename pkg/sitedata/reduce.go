package sitedata

// SiteExtreme is the extreme value of one pin and every site holding it.
type SiteExtreme[T any] struct {
	Value T
	Sites []int
}

// PinExtreme is the extreme value at one site and every pin holding it.
type PinExtreme[T any] struct {
	Value T
	Pins  []string
}

func greater[T Ordered](x, y T) bool { return x > y }
func less[T Ordered](x, y T) bool    { return x < y }

// extreme accumulates the best value and every key holding it. NaN never
// beats a number; only when every candidate is NaN is the result NaN, held
// by all of them. The outcome does not depend on iteration order.
type extreme[T Ordered, K any] struct {
	better  func(x, y T) bool
	value   T
	keys    []K
	nan     T
	nanKeys []K
}

func (e *extreme[T, K]) add(v T, k K) {
	if v != v {
		e.nan = v
		e.nanKeys = append(e.nanKeys, k)
		return
	}
	switch {
	case e.keys == nil || e.better(v, e.value):
		e.value = v
		e.keys = []K{k}
	case v == e.value:
		e.keys = append(e.keys, k)
	}
}

// result returns the extreme, or false when nothing was added.
func (e *extreme[T, K]) result() (T, []K, bool) {
	if e.keys != nil {
		return e.value, e.keys, true
	}
	return e.nan, e.nanKeys, e.nanKeys != nil
}

// reductionSites returns the sites a SiteData reduction runs over: the
// explicit sites, or the system site when that is all there is.
func reductionSites[T any](op string, s *SiteData[T]) ([]int, error) {
	if len(s.sites) > 0 {
		return s.sites, nil
	}
	if s.HasSystemValue() {
		return []int{SystemSite}, nil
	}
	return nil, argumentErrorf(op, "no values to reduce")
}

func extremeOf[T Ordered](op string, s *SiteData[T], better func(x, y T) bool) (T, []int, error) {
	sites, err := reductionSites(op, s)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	e := extreme[T, int]{better: better}
	for _, site := range sites {
		e.add(s.values[site], site)
	}
	best, winners, _ := e.result()
	return best, winners, nil
}

// Max returns the largest value across sites and every site holding it.
// A system value takes part only when there are no explicit sites, and is
// then reported as SystemSite. NaN entries are skipped unless every entry
// is NaN, in which case NaN is returned with every site.
func Max[T Ordered](s *SiteData[T]) (T, []int, error) {
	return extremeOf("Max", s, greater[T])
}

// Min returns the smallest value across sites and every site holding it.
func Min[T Ordered](s *SiteData[T]) (T, []int, error) {
	return extremeOf("Min", s, less[T])
}

// Mean returns the arithmetic mean across sites.
func Mean[T Number](s *SiteData[T]) (float64, error) {
	sites, err := reductionSites("Mean", s)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, site := range sites {
		sum += float64(s.values[site])
	}
	return sum / float64(len(sites)), nil
}

// pinAxis returns the sites a cross-pin reduction runs over: the union of
// explicit sites, or the system site when every pin is a system pin.
func pinAxis[T any](op string, p *PinSiteData[T]) ([]int, error) {
	if len(p.pins) == 0 {
		return nil, argumentErrorf(op, "no pins to reduce")
	}
	if sites := p.SiteNumbers(); len(sites) > 0 {
		return sites, nil
	}
	for _, pin := range p.pins {
		if !p.data[pin].HasSystemValue() {
			return nil, argumentErrorf(op, "no values to reduce")
		}
	}
	return []int{SystemSite}, nil
}

// forEachSite calls f for every site on the pin axis with the pins that
// resolve that site and their values. Pins without a value at a site are
// left out of that site's reduction.
func forEachSite[T any](op string, p *PinSiteData[T], f func(site int, pins []string, values []T)) ([]int, error) {
	sites, err := pinAxis(op, p)
	if err != nil {
		return nil, err
	}
	for _, site := range sites {
		var pins []string
		var values []T
		for _, pin := range p.pins {
			if v, ok := p.data[pin].lookup(site); ok {
				pins = append(pins, pin)
				values = append(values, v)
			}
		}
		f(site, pins, values)
	}
	return sites, nil
}

func extremeByPin[T Ordered](op string, p *PinSiteData[T], better func(x, y T) bool) (map[int]PinExtreme[T], []int, error) {
	out := make(map[int]PinExtreme[T])
	sites, err := forEachSite(op, p, func(site int, pins []string, values []T) {
		e := extreme[T, string]{better: better}
		for i, v := range values {
			e.add(v, pins[i])
		}
		v, holders, _ := e.result()
		out[site] = PinExtreme[T]{Value: v, Pins: holders}
	})
	return out, sites, err
}

func extremeAcrossPins[T Ordered](op string, p *PinSiteData[T], better func(x, y T) bool) (*SiteData[T], error) {
	byPin, sites, err := extremeByPin(op, p, better)
	if err != nil {
		return nil, err
	}
	return siteDataFromSlice(sites, func(i int) T { return byPin[sites[i]].Value }), nil
}

// MaxAcrossPins returns, for every site, the largest value across pins.
func MaxAcrossPins[T Ordered](p *PinSiteData[T]) (*SiteData[T], error) {
	return extremeAcrossPins("MaxAcrossPins", p, greater[T])
}

// MinAcrossPins returns, for every site, the smallest value across pins.
func MinAcrossPins[T Ordered](p *PinSiteData[T]) (*SiteData[T], error) {
	return extremeAcrossPins("MinAcrossPins", p, less[T])
}

// MaxByPin returns, for every site, the largest value across pins and
// every pin holding it.
func MaxByPin[T Ordered](p *PinSiteData[T]) (map[int]PinExtreme[T], error) {
	out, _, err := extremeByPin("MaxByPin", p, greater[T])
	return out, err
}

// MinByPin returns, for every site, the smallest value across pins and
// every pin holding it.
func MinByPin[T Ordered](p *PinSiteData[T]) (map[int]PinExtreme[T], error) {
	out, _, err := extremeByPin("MinByPin", p, less[T])
	return out, err
}

// MeanAcrossPins returns, for every site, the mean value across pins.
func MeanAcrossPins[T Number](p *PinSiteData[T]) (*SiteData[float64], error) {
	means := make(map[int]float64)
	sites, err := forEachSite("MeanAcrossPins", p, func(site int, _ []string, values []T) {
		var sum float64
		for _, v := range values {
			sum += float64(v)
		}
		means[site] = sum / float64(len(values))
	})
	if err != nil {
		return nil, err
	}
	return siteDataFromSlice(sites, func(i int) float64 { return means[sites[i]] }), nil
}

func extremeBySite[T Ordered](op string, p *PinSiteData[T], better func(x, y T) bool) (map[string]SiteExtreme[T], error) {
	out := make(map[string]SiteExtreme[T], len(p.pins))
	for _, pin := range p.pins {
		v, sites, err := extremeOf(op, p.data[pin], better)
		if err != nil {
			return nil, argumentErrorf(op, "pin %q has no values", pin)
		}
		out[pin] = SiteExtreme[T]{Value: v, Sites: sites}
	}
	return out, nil
}

// MaxBySite returns, for every pin, the largest value across sites and
// every site holding it.
func MaxBySite[T Ordered](p *PinSiteData[T]) (map[string]SiteExtreme[T], error) {
	return extremeBySite("MaxBySite", p, greater[T])
}

// MinBySite returns, for every pin, the smallest value across sites and
// every site holding it.
func MinBySite[T Ordered](p *PinSiteData[T]) (map[string]SiteExtreme[T], error) {
	return extremeBySite("MinBySite", p, less[T])
}

// MeanBySite returns, for every pin, the mean value across sites.
func MeanBySite[T Number](p *PinSiteData[T]) (map[string]float64, error) {
	out := make(map[string]float64, len(p.pins))
	for _, pin := range p.pins {
		m, err := Mean(p.data[pin])
		if err != nil {
			return nil, argumentErrorf("MeanBySite", "pin %q has no values", pin)
		}
		out[pin] = m
	}
	return out, nil
}

func extremeOverall[T Ordered](op string, p *PinSiteData[T], better func(x, y T) bool) (T, []Key, error) {
	e := extreme[T, Key]{better: better}
	for _, pin := range p.pins {
		sd := p.data[pin]
		sites, err := reductionSites(op, sd)
		if err != nil {
			continue
		}
		for _, site := range sites {
			e.add(sd.values[site], Key{Site: site, Pin: pin})
		}
	}
	best, winners, ok := e.result()
	if !ok {
		return best, nil, argumentErrorf(op, "no values to reduce")
	}
	return best, winners, nil
}

// MaxOverall returns the largest value across all pins and sites and every
// key holding it. System pins are reported at SystemSite.
func MaxOverall[T Ordered](p *PinSiteData[T]) (T, []Key, error) {
	return extremeOverall("MaxOverall", p, greater[T])
}

// MinOverall returns the smallest value across all pins and sites and
// every key holding it.
func MinOverall[T Ordered](p *PinSiteData[T]) (T, []Key, error) {
	return extremeOverall("MinOverall", p, less[T])
}
