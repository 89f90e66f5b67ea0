package sitedata

import (
	"fmt"
	"strings"
)

// ComparisonType selects the relation tested by Compare.
type ComparisonType uint8

const (
	EqualTo ComparisonType = iota
	NotEqualTo
	GreaterThan
	GreaterThanOrEqualTo
	LessThan
	LessThanOrEqualTo
)

var comparisonNames = []string{
	"EqualTo", "NotEqualTo", "GreaterThan", "GreaterThanOrEqualTo", "LessThan", "LessThanOrEqualTo",
}

// String returns the comparison name.
func (c ComparisonType) String() string {
	if int(c) < len(comparisonNames) {
		return comparisonNames[c]
	}
	return fmt.Sprintf("ComparisonType(%d)", uint8(c))
}

// ParseComparisonType parses a comparison name case-insensitively. The
// symbolic forms ==, !=, >, >=, < and <= are also accepted.
func ParseComparisonType(s string) (ComparisonType, error) {
	switch s {
	case "==":
		return EqualTo, nil
	case "!=":
		return NotEqualTo, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterThanOrEqualTo, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessThanOrEqualTo, nil
	}
	for i, name := range comparisonNames {
		if strings.EqualFold(s, name) {
			return ComparisonType(i), nil
		}
	}
	return 0, argumentErrorf("ParseComparisonType", "unknown comparison %q", s)
}

func comparator[T Ordered](op string, c ComparisonType) (func(x, y T) (bool, error), error) {
	var f func(x, y T) bool
	switch c {
	case EqualTo:
		f = func(x, y T) bool { return x == y }
	case NotEqualTo:
		f = func(x, y T) bool { return x != y }
	case GreaterThan:
		f = func(x, y T) bool { return x > y }
	case GreaterThanOrEqualTo:
		f = func(x, y T) bool { return x >= y }
	case LessThan:
		f = func(x, y T) bool { return x < y }
	case LessThanOrEqualTo:
		f = func(x, y T) bool { return x <= y }
	default:
		return nil, argumentErrorf(op, "unknown comparison type %d", uint8(c))
	}
	return total(f), nil
}

// Compare tests a against b with the relation c for every site.
func Compare[T Ordered](a *SiteData[T], c ComparisonType, b SiteOperand[T]) (*SiteData[bool], error) {
	f, err := comparator[T]("Compare", c)
	if err != nil {
		return nil, err
	}
	return binarySites("Compare", a, b, f)
}

// PinCompare tests a against b with the relation c for every pin and site.
func PinCompare[T Ordered](a *PinSiteData[T], c ComparisonType, b PinSiteOperand[T]) (*PinSiteData[bool], error) {
	f, err := comparator[T]("Compare", c)
	if err != nil {
		return nil, err
	}
	return binaryPins("Compare", a, b, f)
}
