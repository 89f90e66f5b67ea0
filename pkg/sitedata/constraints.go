package sitedata

import "golang.org/x/exp/constraints"

// Number is satisfied by every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is satisfied by the numeric types that have a negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Integer is satisfied by every integer type.
type Integer interface {
	constraints.Integer
}

// Float is satisfied by every floating-point type.
type Float interface {
	constraints.Float
}

// Ordered is satisfied by every type supporting < and >.
type Ordered interface {
	constraints.Ordered
}

// isIntegral reports whether T truncates division.
func isIntegral[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}
