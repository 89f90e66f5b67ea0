package sitedata

import (
	"fmt"
	"slices"
	"strings"
)

// SystemSite is the site number that addresses site-agnostic data.
const SystemSite = -1

// Key addresses one cell of a PinSiteData.
type Key struct {
	Site int
	Pin  string
}

// String returns "pin@site", or "pin@system" for system data.
func (k Key) String() string {
	if k.Site == SystemSite {
		return k.Pin + "@system"
	}
	return fmt.Sprintf("%s@%d", k.Pin, k.Site)
}

func validateSite(op string, site int) error {
	if site < 0 && site != SystemSite {
		return argumentErrorf(op, "invalid site number %d", site)
	}
	return nil
}

// validateSites checks that sites are valid and unique.
func validateSites(op string, sites []int) error {
	seen := make(map[int]struct{}, len(sites))
	for _, s := range sites {
		if err := validateSite(op, s); err != nil {
			return err
		}
		if _, dup := seen[s]; dup {
			return argumentErrorf(op, "duplicate site number %d", s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// validatePins checks that pin names are non-empty and unique.
func validatePins(op string, pins []string) error {
	seen := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		if p == "" {
			return argumentErrorf(op, "empty pin name")
		}
		if _, dup := seen[p]; dup {
			return argumentErrorf(op, "duplicate pin name %q", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// unionSites appends the sites of b missing from a, preserving order.
func unionSites(a, b []int) []int {
	out := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func unionPins(a, b []string) []string {
	out := slices.Clone(a)
	for _, p := range b {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
