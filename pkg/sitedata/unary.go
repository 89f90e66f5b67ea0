package sitedata

import "math"

func unarySites[T, R any](s *SiteData[T], f func(T) R) *SiteData[R] {
	out, _ := mapSites(s, "", func(_ int, _ string, v T) (R, error) { return f(v), nil })
	return out
}

func unaryPins[T, R any](p *PinSiteData[T], f func(T) R) *PinSiteData[R] {
	out, _ := mapPins(p, func(_ int, _ string, v T) (R, error) { return f(v), nil })
	return out
}

func abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func negate[T Signed](x T) T             { return -x }
func invert[T Float](x T) T              { return 1 / x }
func log10[T Float](x T) T               { return T(math.Log10(float64(x))) }
func squareRoot[T Float](x T) T          { return T(math.Sqrt(float64(x))) }
func truncate[T Float](x T) T            { return T(math.Trunc(float64(x))) }
func bitwiseComplement[T Integer](x T) T { return ^x }

// Abs returns the absolute value of every entry.
func Abs[T Signed](s *SiteData[T]) *SiteData[T] { return unarySites(s, abs[T]) }

// Negate returns the negation of every entry.
func Negate[T Signed](s *SiteData[T]) *SiteData[T] { return unarySites(s, negate[T]) }

// Invert returns 1/x for every entry.
func Invert[T Float](s *SiteData[T]) *SiteData[T] { return unarySites(s, invert[T]) }

// Log10 returns the base-10 logarithm of every entry.
func Log10[T Float](s *SiteData[T]) *SiteData[T] { return unarySites(s, log10[T]) }

// SquareRoot returns the square root of every entry.
func SquareRoot[T Float](s *SiteData[T]) *SiteData[T] { return unarySites(s, squareRoot[T]) }

// Truncate drops the fractional part of every entry.
func Truncate[T Float](s *SiteData[T]) *SiteData[T] { return unarySites(s, truncate[T]) }

// BitwiseComplement returns ^x for every entry.
func BitwiseComplement[T Integer](s *SiteData[T]) *SiteData[T] {
	return unarySites(s, bitwiseComplement[T])
}

// PinAbs returns the absolute value of every entry.
func PinAbs[T Signed](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, abs[T]) }

// PinNegate returns the negation of every entry.
func PinNegate[T Signed](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, negate[T]) }

// PinInvert returns 1/x for every entry.
func PinInvert[T Float](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, invert[T]) }

// PinLog10 returns the base-10 logarithm of every entry.
func PinLog10[T Float](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, log10[T]) }

// PinSquareRoot returns the square root of every entry.
func PinSquareRoot[T Float](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, squareRoot[T]) }

// PinTruncate drops the fractional part of every entry.
func PinTruncate[T Float](p *PinSiteData[T]) *PinSiteData[T] { return unaryPins(p, truncate[T]) }

// PinBitwiseComplement returns ^x for every entry.
func PinBitwiseComplement[T Integer](p *PinSiteData[T]) *PinSiteData[T] {
	return unaryPins(p, bitwiseComplement[T])
}

// Select maps every entry through f, keeping the key structure including
// the system value.
func Select[T, U any](s *SiteData[T], f func(T) U) *SiteData[U] {
	return unarySites(s, f)
}

// PinSelect maps every entry through f, keeping the key structure
// including system pins.
func PinSelect[T, U any](p *PinSiteData[T], f func(T) U) *PinSiteData[U] {
	return unaryPins(p, f)
}
