package stepcontext

import (
	"fmt"

	"github.com/semitest/stl-go/pkg/sitedata"
)

// ValidatePinSiteData checks that every pin of data is configured and
// resolves a value at every active site.
func ValidatePinSiteData[T any](c *Context, data *sitedata.PinSiteData[T]) error {
	if err := c.ValidatePins(data.PinNames()); err != nil {
		return err
	}
	for _, pin := range data.PinNames() {
		for _, site := range c.sites {
			if _, err := data.GetValue(site, pin); err != nil {
				err = fmt.Errorf("validate: %w", err)
				c.warnLog("data validation failed", "error", err)
				return err
			}
		}
	}
	return nil
}

// ValidateSiteData checks that data resolves a value at every active site.
func ValidateSiteData[T any](c *Context, data *sitedata.SiteData[T]) error {
	for _, site := range c.sites {
		if _, err := data.GetValue(site); err != nil {
			err = fmt.Errorf("validate: %w", err)
			c.warnLog("data validation failed", "error", err)
			return err
		}
	}
	return nil
}
