package stepcontext

import (
	"fmt"

	"github.com/semitest/stl-go/pkg/log"
	"github.com/semitest/stl-go/pkg/sitedata"
)

// sharedPinSiteData is the encoded form of a shared PinSiteData.
type sharedPinSiteData[T any] struct {
	Pins []string `cbor:"1,keyasint"`

	// Values holds one row per active site, one column per pin.
	Values [][]T `cbor:"2,keyasint"`
}

func (c *Context) shareEvent(kind log.Kind, id string, pins, size int) log.Event {
	e := c.event(kind)
	e.Share = &log.ShareEvent{ID: id, Sites: len(c.sites), Pins: pins, Size: size}
	return e
}

func (c *Context) put(op, id string, pins int, v any) error {
	data, err := marshalShared(v)
	if err != nil {
		return c.fail(op, fmt.Errorf("encode shared data %q: %w", id, err))
	}
	if err := c.store.Set(id, data); err != nil {
		return c.fail(op, fmt.Errorf("store shared data %q: %w", id, err))
	}
	c.emit(c.shareEvent(log.KindShare, id, pins, len(data)))
	c.debugLog("shared data stored", "id", id, "sites", len(c.sites), "size", len(data))
	return nil
}

func (c *Context) get(op, id string, v any) (int, error) {
	data, err := c.store.Get(id)
	if err != nil {
		return 0, c.fail(op, fmt.Errorf("get shared data %q: %w", id, err))
	}
	if err := unmarshalShared(data, v); err != nil {
		return 0, c.fail(op, fmt.Errorf("decode shared data %q: %w", id, err))
	}
	return len(data), nil
}

// ShareSiteData stores the value of data at every active site under id.
func ShareSiteData[T any](c *Context, id string, data *sitedata.SiteData[T]) error {
	const op = "ShareSiteData"
	values := make([]T, len(c.sites))
	for i, site := range c.sites {
		v, err := data.GetValue(site)
		if err != nil {
			return c.fail(op, fmt.Errorf("share %q: %w", id, err))
		}
		values[i] = v
	}
	return c.put(op, id, 0, values)
}

// GetSharedSiteData rebuilds SiteData stored under id for the active sites.
// The stored value count must match the number of active sites.
func GetSharedSiteData[T any](c *Context, id string) (*sitedata.SiteData[T], error) {
	const op = "GetSharedSiteData"
	var values []T
	size, err := c.get(op, id, &values)
	if err != nil {
		return nil, err
	}
	if len(values) != len(c.sites) {
		return nil, c.fail(op, fmt.Errorf("%w: %q has %d values for %d active sites",
			ErrSharedDataSize, id, len(values), len(c.sites)))
	}
	sd, err := sitedata.NewFromSites(c.sites, values)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.emit(c.shareEvent(log.KindRetrieve, id, 0, size))
	return sd, nil
}

// SharePinSiteData stores every pin of data at every active site under id.
func SharePinSiteData[T any](c *Context, id string, data *sitedata.PinSiteData[T]) error {
	const op = "SharePinSiteData"
	shared := sharedPinSiteData[T]{
		Pins:   data.PinNames(),
		Values: make([][]T, len(c.sites)),
	}
	for i, site := range c.sites {
		row, err := data.ExtractSite(site)
		if err != nil {
			return c.fail(op, fmt.Errorf("share %q: %w", id, err))
		}
		shared.Values[i] = make([]T, len(shared.Pins))
		for j, pin := range shared.Pins {
			shared.Values[i][j] = row[pin]
		}
	}
	return c.put(op, id, len(shared.Pins), shared)
}

// GetSharedPinSiteData rebuilds PinSiteData stored under id for the active
// sites. Pins configured as system pins come back as system pins.
func GetSharedPinSiteData[T any](c *Context, id string) (*sitedata.PinSiteData[T], error) {
	const op = "GetSharedPinSiteData"
	var shared sharedPinSiteData[T]
	size, err := c.get(op, id, &shared)
	if err != nil {
		return nil, err
	}
	if len(shared.Values) != len(c.sites) {
		return nil, c.fail(op, fmt.Errorf("%w: %q has %d site rows for %d active sites",
			ErrSharedDataSize, id, len(shared.Values), len(c.sites)))
	}
	for i, row := range shared.Values {
		if len(row) != len(shared.Pins) {
			return nil, c.fail(op, fmt.Errorf("%w: %q row %d has %d values for %d pins",
				ErrSharedDataSize, id, i, len(row), len(shared.Pins)))
		}
	}

	perPin := make([]*sitedata.SiteData[T], len(shared.Pins))
	for j, pin := range shared.Pins {
		if c.IsSystemPin(pin) {
			perPin[j] = sitedata.NewSystem(shared.Values[0][j])
			continue
		}
		column := make([]T, len(c.sites))
		for i := range c.sites {
			column[i] = shared.Values[i][j]
		}
		sd, err := sitedata.NewFromSites(c.sites, column)
		if err != nil {
			return nil, c.fail(op, err)
		}
		perPin[j] = sd
	}
	p, err := sitedata.NewFromSiteData(shared.Pins, perPin)
	if err != nil {
		return nil, c.fail(op, err)
	}
	c.emit(c.shareEvent(log.KindRetrieve, id, len(shared.Pins), size))
	return p, nil
}
