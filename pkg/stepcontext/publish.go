package stepcontext

import (
	"fmt"
	"reflect"

	"github.com/semitest/stl-go/pkg/log"
	"github.com/semitest/stl-go/pkg/sitedata"
	"golang.org/x/exp/constraints"
)

// Publishable is satisfied by the element types that can be published.
// Booleans are published as 0 or 1.
type Publishable interface {
	constraints.Integer | constraints.Float | ~bool
}

func resultValue[T Publishable](v T) (float64, log.ValueType) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1, log.ValueBool
		}
		return 0, log.ValueBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), log.ValueInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), log.ValueUint
	default:
		return rv.Float(), log.ValueFloat
	}
}

func resultEvent[T Publishable](c *Context, dataID string, site int, pin string, v T) log.Event {
	value, vt := resultValue(v)
	e := c.event(log.KindPublish)
	e.Result = &log.ResultEvent{DataID: dataID, Site: site, Pin: pin, Type: vt, Value: value}
	return e
}

// PublishResults publishes every pin of data at every active site,
// site-major. A system pin, either configured as one or holding only a
// system value, is published once at sitedata.SystemSite after the
// site-major block. Every pin must be configured. Nothing is published if
// any pin is unknown or any value cannot be resolved.
func PublishResults[T Publishable](c *Context, data *sitedata.PinSiteData[T], dataID string) error {
	const op = "PublishResults"
	pins := data.PinNames()
	if err := c.ValidatePins(pins); err != nil {
		return c.fail(op, fmt.Errorf("publish %q: %w", dataID, err))
	}

	var sitePins, systemPins []string
	for _, pin := range pins {
		if c.IsSystemPin(pin) || data.IsSystemPin(pin) {
			systemPins = append(systemPins, pin)
		} else {
			sitePins = append(sitePins, pin)
		}
	}

	events := make([]log.Event, 0, len(c.sites)*len(sitePins)+len(systemPins))
	for _, site := range c.sites {
		for _, pin := range sitePins {
			v, err := data.GetValue(site, pin)
			if err != nil {
				return c.fail(op, fmt.Errorf("publish %q: %w", dataID, err))
			}
			events = append(events, resultEvent(c, dataID, site, pin, v))
		}
	}
	for _, pin := range systemPins {
		v, err := data.GetValue(sitedata.SystemSite, pin)
		if err != nil {
			return c.fail(op, fmt.Errorf("publish %q: %w", dataID, err))
		}
		events = append(events, resultEvent(c, dataID, sitedata.SystemSite, pin, v))
	}
	c.emit(events...)
	c.debugLog("published results", "dataID", dataID, "sites", len(c.sites),
		"pins", len(sitePins), "systemPins", len(systemPins))
	return nil
}

// PublishSiteResults publishes one value per active site. A system-only
// SiteData is published once at sitedata.SystemSite.
func PublishSiteResults[T Publishable](c *Context, data *sitedata.SiteData[T], dataID string) error {
	const op = "PublishSiteResults"
	if v, ok := data.SystemValue(); ok && data.IsSystemOnly() {
		c.emit(resultEvent(c, dataID, sitedata.SystemSite, "", v))
		c.debugLog("published system result", "dataID", dataID)
		return nil
	}
	events := make([]log.Event, 0, len(c.sites))
	for _, site := range c.sites {
		v, err := data.GetValue(site)
		if err != nil {
			return c.fail(op, fmt.Errorf("publish %q: %w", dataID, err))
		}
		events = append(events, resultEvent(c, dataID, site, "", v))
	}
	c.emit(events...)
	c.debugLog("published site results", "dataID", dataID, "sites", len(c.sites))
	return nil
}

// PublishSingleSiteResult publishes value for the only active site. pin
// may be empty.
func PublishSingleSiteResult[T Publishable](c *Context, pin string, value T, dataID string) error {
	const op = "PublishSingleSiteResult"
	if len(c.sites) != 1 {
		return c.fail(op, fmt.Errorf("publish %q: %w (%d)", dataID, ErrNotSingleSite, len(c.sites)))
	}
	if pin != "" && !c.HasPin(pin) {
		return c.fail(op, fmt.Errorf("publish %q: %w: %q", dataID, ErrUnknownPin, pin))
	}
	c.emit(resultEvent(c, dataID, c.sites[0], pin, value))
	c.debugLog("published single site result", "dataID", dataID, "site", c.sites[0])
	return nil
}
