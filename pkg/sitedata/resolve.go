package sitedata

// cellFunc computes one result cell. site and pin identify the cell for
// error reporting; pin is empty for SiteData operations.
type cellFunc[T, R any] func(site int, pin string, x, y T) (R, error)

// combineSites applies f over the union of the site keys of a and b.
//
// Each site is resolved in both operands through their system values. The
// system key itself is kept only when both operands can answer it; a result
// that would consist of nothing but an unanswerable system key fails.
func combineSites[T, R any](a, b SiteOperand[T], pin string, f cellFunc[T, R]) (*SiteData[R], error) {
	aSites, aSystem, aKeyed := a.siteKeys()
	bSites, bSystem, bKeyed := b.siteKeys()

	sites := unionSites(aSites, bSites)
	keepSystem := (aSystem || !aKeyed) && (bSystem || !bKeyed)
	if len(sites) == 0 && !keepSystem && (aSystem || bSystem) {
		return nil, siteNotFound(SystemSite, pin)
	}

	values := make(map[int]R, len(sites)+1)
	keys := sites
	if keepSystem {
		keys = append(keys[:len(keys):len(keys)], SystemSite)
	}
	for _, site := range keys {
		x, ok := a.valueAt(site)
		if !ok {
			return nil, siteNotFound(site, pin)
		}
		y, ok := b.valueAt(site)
		if !ok {
			return nil, siteNotFound(site, pin)
		}
		r, err := f(site, pin, x, y)
		if err != nil {
			return nil, err
		}
		values[site] = r
	}
	return newSiteData(sites, values), nil
}

// combinePins applies f over the union of the pin keys of a and b, then over
// the union of each pin's sites.
func combinePins[T, R any](a, b PinSiteOperand[T], f cellFunc[T, R]) (*PinSiteData[R], error) {
	aPins, _ := a.pinKeys()
	bPins, _ := b.pinKeys()
	pins := unionPins(aPins, bPins)

	data := make(map[string]*SiteData[R], len(pins))
	for _, pin := range pins {
		sa, ok := a.forPin(pin)
		if !ok {
			return nil, pinNotFound(pin)
		}
		sb, ok := b.forPin(pin)
		if !ok {
			return nil, pinNotFound(pin)
		}
		sd, err := combineSites(sa, sb, pin, f)
		if err != nil {
			return nil, err
		}
		data[pin] = sd
	}
	return newPinSiteData(pins, data), nil
}

// mapSites applies f to every stored entry of s, keeping its keys.
func mapSites[T, R any](s *SiteData[T], pin string, f func(site int, pin string, v T) (R, error)) (*SiteData[R], error) {
	values := make(map[int]R, len(s.values))
	for site, v := range s.values {
		r, err := f(site, pin, v)
		if err != nil {
			return nil, err
		}
		values[site] = r
	}
	return newSiteData(s.sites, values), nil
}

// mapPins applies f to every stored entry of p, keeping its keys.
func mapPins[T, R any](p *PinSiteData[T], f func(site int, pin string, v T) (R, error)) (*PinSiteData[R], error) {
	data := make(map[string]*SiteData[R], len(p.pins))
	for _, pin := range p.pins {
		sd, err := mapSites(p.data[pin], pin, f)
		if err != nil {
			return nil, err
		}
		data[pin] = sd
	}
	return newPinSiteData(p.pins, data), nil
}
