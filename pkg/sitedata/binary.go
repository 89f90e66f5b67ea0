package sitedata

import (
	"errors"
	"fmt"
	"math"
)

var (
	errDivideByZero  = errors.New("integer division by zero")
	errNegativeShift = errors.New("negative shift count")
)

func cellLabel(site int, pin string) string {
	if pin == "" {
		return siteLabel(site)
	}
	return fmt.Sprintf("%s of pin %q", siteLabel(site), pin)
}

// withKey adapts an element function to a cellFunc, attaching the cell key
// to any error.
func withKey[T, R any](op string, f func(x, y T) (R, error)) cellFunc[T, R] {
	return func(site int, pin string, x, y T) (R, error) {
		r, err := f(x, y)
		if err != nil {
			return r, argumentErrorf(op, "%v at %s", err, cellLabel(site, pin))
		}
		return r, nil
	}
}

func total[T, R any](f func(x, y T) R) func(x, y T) (R, error) {
	return func(x, y T) (R, error) { return f(x, y), nil }
}

func binarySites[T, R any](op string, a *SiteData[T], b SiteOperand[T], f func(x, y T) (R, error)) (*SiteData[R], error) {
	return combineSites[T, R](a, b, "", withKey(op, f))
}

func binaryPins[T, R any](op string, a *PinSiteData[T], b PinSiteOperand[T], f func(x, y T) (R, error)) (*PinSiteData[R], error) {
	return combinePins[T, R](a, b, withKey(op, f))
}

func add[T Number](x, y T) T      { return x + y }
func subtract[T Number](x, y T) T { return x - y }
func multiply[T Number](x, y T) T { return x * y }
func maximum[T Number](x, y T) T  { return max(x, y) }
func minimum[T Number](x, y T) T  { return min(x, y) }

func divide[T Number](x, y T) (T, error) {
	if y == 0 && isIntegral[T]() {
		return 0, errDivideByZero
	}
	return x / y, nil
}

func power[T Number](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Add returns a + b for every site.
func Add[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Add", a, b, total(add[T]))
}

// Subtract returns a - b for every site.
func Subtract[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Subtract", a, b, total(subtract[T]))
}

// Multiply returns a * b for every site.
func Multiply[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Multiply", a, b, total(multiply[T]))
}

// Divide returns a / b for every site. Integer division by zero fails with
// ErrArgument; floating-point division follows IEEE 754.
func Divide[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Divide", a, b, divide[T])
}

// Power returns a raised to b for every site, computed in float64.
func Power[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Power", a, b, total(power[T]))
}

// Maximum returns the larger of a and b for every site.
func Maximum[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Maximum", a, b, total(maximum[T]))
}

// Minimum returns the smaller of a and b for every site.
func Minimum[T Number](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("Minimum", a, b, total(minimum[T]))
}

// PinAdd returns a + b for every pin and site.
func PinAdd[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Add", a, b, total(add[T]))
}

// PinSubtract returns a - b for every pin and site.
func PinSubtract[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Subtract", a, b, total(subtract[T]))
}

// PinMultiply returns a * b for every pin and site.
func PinMultiply[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Multiply", a, b, total(multiply[T]))
}

// PinDivide returns a / b for every pin and site.
func PinDivide[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Divide", a, b, divide[T])
}

// PinPower returns a raised to b for every pin and site.
func PinPower[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Power", a, b, total(power[T]))
}

// PinMaximum returns the larger of a and b for every pin and site.
func PinMaximum[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Maximum", a, b, total(maximum[T]))
}

// PinMinimum returns the smaller of a and b for every pin and site.
func PinMinimum[T Number](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("Minimum", a, b, total(minimum[T]))
}
