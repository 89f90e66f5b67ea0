package sitedata

func bitwiseAnd[T Integer](x, y T) T { return x & y }
func bitwiseOr[T Integer](x, y T) T  { return x | y }
func bitwiseXor[T Integer](x, y T) T { return x ^ y }

func shiftLeft[T Integer](x, n T) (T, error) {
	if n < 0 {
		return 0, errNegativeShift
	}
	return x << n, nil
}

func shiftRight[T Integer](x, n T) (T, error) {
	if n < 0 {
		return 0, errNegativeShift
	}
	return x >> n, nil
}

// BitwiseAnd returns a & b for every site.
func BitwiseAnd[T Integer](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("BitwiseAnd", a, b, total(bitwiseAnd[T]))
}

// BitwiseOr returns a | b for every site.
func BitwiseOr[T Integer](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("BitwiseOr", a, b, total(bitwiseOr[T]))
}

// BitwiseXor returns a ^ b for every site.
func BitwiseXor[T Integer](a *SiteData[T], b SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("BitwiseXor", a, b, total(bitwiseXor[T]))
}

// ShiftLeft returns a << n for every site. A negative count fails.
func ShiftLeft[T Integer](a *SiteData[T], n SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("ShiftLeft", a, n, shiftLeft[T])
}

// ShiftRight returns a >> n for every site. A negative count fails.
func ShiftRight[T Integer](a *SiteData[T], n SiteOperand[T]) (*SiteData[T], error) {
	return binarySites("ShiftRight", a, n, shiftRight[T])
}

// PinBitwiseAnd returns a & b for every pin and site.
func PinBitwiseAnd[T Integer](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("BitwiseAnd", a, b, total(bitwiseAnd[T]))
}

// PinBitwiseOr returns a | b for every pin and site.
func PinBitwiseOr[T Integer](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("BitwiseOr", a, b, total(bitwiseOr[T]))
}

// PinBitwiseXor returns a ^ b for every pin and site.
func PinBitwiseXor[T Integer](a *PinSiteData[T], b PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("BitwiseXor", a, b, total(bitwiseXor[T]))
}

// PinShiftLeft returns a << n for every pin and site.
func PinShiftLeft[T Integer](a *PinSiteData[T], n PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("ShiftLeft", a, n, shiftLeft[T])
}

// PinShiftRight returns a >> n for every pin and site.
func PinShiftRight[T Integer](a *PinSiteData[T], n PinSiteOperand[T]) (*PinSiteData[T], error) {
	return binaryPins("ShiftRight", a, n, shiftRight[T])
}
