package sitedata

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds. Use errors.Is to classify an error returned by this package.
var (
	// ErrArgument reports malformed input: duplicate keys, mismatched
	// lengths, invalid site numbers or an invalid operand value.
	ErrArgument = errors.New("invalid argument")

	// ErrKeyNotFound reports a site, pin or (site, pin) pair that cannot be
	// resolved directly or through a system value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrType reports an operation the element type does not support.
	ErrType = errors.New("unsupported element type")
)

// noSite marks a KeyNotFoundError that names a pin only.
const noSite = math.MinInt

// ArgumentError describes rejected input.
type ArgumentError struct {
	Op     string
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("sitedata: %s: %s", e.Op, e.Detail)
}

// Unwrap returns ErrArgument.
func (e *ArgumentError) Unwrap() error { return ErrArgument }

func argumentErrorf(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// KeyNotFoundError names the key that could not be resolved.
// Pin is empty for SiteData lookups.
type KeyNotFoundError struct {
	Site int
	Pin  string
}

func siteNotFound(site int, pin string) *KeyNotFoundError {
	return &KeyNotFoundError{Site: site, Pin: pin}
}

func pinNotFound(pin string) *KeyNotFoundError {
	return &KeyNotFoundError{Site: noSite, Pin: pin}
}

// HasSite reports whether the error names a site.
func (e *KeyNotFoundError) HasSite() bool { return e.Site != noSite }

func (e *KeyNotFoundError) Error() string {
	switch {
	case !e.HasSite():
		return fmt.Sprintf("sitedata: pin %q not found", e.Pin)
	case e.Pin == "":
		return fmt.Sprintf("sitedata: %s not found", siteLabel(e.Site))
	default:
		return fmt.Sprintf("sitedata: %s not found for pin %q", siteLabel(e.Site), e.Pin)
	}
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// TypeError reports an operation requested on an element type that cannot
// support it.
type TypeError struct {
	Op   string
	Type string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("sitedata: %s is not supported for element type %s", e.Op, e.Type)
}

// Unwrap returns ErrType.
func (e *TypeError) Unwrap() error { return ErrType }

func siteLabel(site int) string {
	if site == SystemSite {
		return "system site"
	}
	return fmt.Sprintf("site %d", site)
}
