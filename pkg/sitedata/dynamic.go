package sitedata

import (
	"fmt"
	"math"
	"strings"
)

// BinaryOp names a binary operation for ApplyBinary.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpMaximum
	OpMinimum
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpShiftLeft
	OpShiftRight
)

var binaryOpNames = []string{
	"Add", "Subtract", "Multiply", "Divide", "Power", "Maximum", "Minimum",
	"BitwiseAnd", "BitwiseOr", "BitwiseXor", "ShiftLeft", "ShiftRight",
}

// String returns the operation name.
func (o BinaryOp) String() string {
	if int(o) < len(binaryOpNames) {
		return binaryOpNames[o]
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(o))
}

// IsBitwise reports whether the operation requires an integer element type.
func (o BinaryOp) IsBitwise() bool { return o >= OpBitwiseAnd }

// ParseBinaryOp parses an operation name case-insensitively.
func ParseBinaryOp(s string) (BinaryOp, error) {
	for i, name := range binaryOpNames {
		if strings.EqualFold(s, name) {
			return BinaryOp(i), nil
		}
	}
	return 0, argumentErrorf("ParseBinaryOp", "unknown operation %q", s)
}

// UnaryOp names a unary operation for ApplyUnary.
type UnaryOp uint8

const (
	OpAbs UnaryOp = iota
	OpNegate
	OpInvert
	OpLog10
	OpSquareRoot
	OpTruncate
	OpBitwiseComplement
)

var unaryOpNames = []string{
	"Abs", "Negate", "Invert", "Log10", "SquareRoot", "Truncate", "BitwiseComplement",
}

// String returns the operation name.
func (o UnaryOp) String() string {
	if int(o) < len(unaryOpNames) {
		return unaryOpNames[o]
	}
	return fmt.Sprintf("UnaryOp(%d)", uint8(o))
}

// ParseUnaryOp parses an operation name case-insensitively.
func ParseUnaryOp(s string) (UnaryOp, error) {
	for i, name := range unaryOpNames {
		if strings.EqualFold(s, name) {
			return UnaryOp(i), nil
		}
	}
	return 0, argumentErrorf("ParseUnaryOp", "unknown operation %q", s)
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// binaryFunc returns the element function for op, or a TypeError when T
// cannot support it. Bitwise operations go through 64-bit integers, which
// is exact for every integer type once the result is converted back.
func binaryFunc[T Number](op BinaryOp) (func(x, y T) (T, error), error) {
	if op.IsBitwise() && !isIntegral[T]() {
		return nil, &TypeError{Op: op.String(), Type: typeName[T]()}
	}
	switch op {
	case OpAdd:
		return total(add[T]), nil
	case OpSubtract:
		return total(subtract[T]), nil
	case OpMultiply:
		return total(multiply[T]), nil
	case OpDivide:
		return divide[T], nil
	case OpPower:
		return total(power[T]), nil
	case OpMaximum:
		return total(maximum[T]), nil
	case OpMinimum:
		return total(minimum[T]), nil
	case OpBitwiseAnd:
		return total(func(x, y T) T { return T(uint64(x) & uint64(y)) }), nil
	case OpBitwiseOr:
		return total(func(x, y T) T { return T(uint64(x) | uint64(y)) }), nil
	case OpBitwiseXor:
		return total(func(x, y T) T { return T(uint64(x) ^ uint64(y)) }), nil
	case OpShiftLeft:
		return func(x, n T) (T, error) {
			if n < 0 {
				return 0, errNegativeShift
			}
			return T(uint64(x) << uint64(n)), nil
		}, nil
	case OpShiftRight:
		signed := isSigned[T]()
		return func(x, n T) (T, error) {
			if n < 0 {
				return 0, errNegativeShift
			}
			if signed {
				return T(int64(x) >> uint64(n)), nil
			}
			return T(uint64(x) >> uint64(n)), nil
		}, nil
	}
	return nil, argumentErrorf("ApplyBinary", "unknown operation %s", op)
}

// unaryFunc returns the element function for op, or a TypeError when T
// cannot support it.
func unaryFunc[T Number](op UnaryOp) (func(T) T, error) {
	integral := isIntegral[T]()
	unsupported := &TypeError{Op: op.String(), Type: typeName[T]()}
	switch op {
	case OpAbs:
		return func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}, nil
	case OpNegate:
		if !isSigned[T]() {
			return nil, unsupported
		}
		return func(x T) T { return -x }, nil
	case OpInvert, OpLog10, OpSquareRoot, OpTruncate:
		if integral {
			return nil, unsupported
		}
		fn := map[UnaryOp]func(float64) float64{
			OpInvert:     func(v float64) float64 { return 1 / v },
			OpLog10:      math.Log10,
			OpSquareRoot: math.Sqrt,
			OpTruncate:   math.Trunc,
		}[op]
		return func(x T) T { return T(fn(float64(x))) }, nil
	case OpBitwiseComplement:
		if !integral {
			return nil, unsupported
		}
		// ^x == -x-1 in two's complement, for signed and unsigned alike.
		return func(x T) T { return -x - 1 }, nil
	}
	return nil, argumentErrorf("ApplyUnary", "unknown operation %s", op)
}

// ApplyBinary applies the operation named by op. Unsupported combinations,
// such as OpShiftLeft on float64, fail with ErrType before any element is
// processed.
func ApplyBinary[T Number](a *SiteData[T], op BinaryOp, b SiteOperand[T]) (*SiteData[T], error) {
	f, err := binaryFunc[T](op)
	if err != nil {
		return nil, err
	}
	return binarySites(op.String(), a, b, f)
}

// PinApplyBinary is ApplyBinary for PinSiteData.
func PinApplyBinary[T Number](a *PinSiteData[T], op BinaryOp, b PinSiteOperand[T]) (*PinSiteData[T], error) {
	f, err := binaryFunc[T](op)
	if err != nil {
		return nil, err
	}
	return binaryPins(op.String(), a, b, f)
}

// ApplyUnary applies the operation named by op. Unsupported combinations,
// such as OpLog10 on int, fail with ErrType.
func ApplyUnary[T Number](s *SiteData[T], op UnaryOp) (*SiteData[T], error) {
	f, err := unaryFunc[T](op)
	if err != nil {
		return nil, err
	}
	return unarySites(s, f), nil
}

// PinApplyUnary is ApplyUnary for PinSiteData.
func PinApplyUnary[T Number](p *PinSiteData[T], op UnaryOp) (*PinSiteData[T], error) {
	f, err := unaryFunc[T](op)
	if err != nil {
		return nil, err
	}
	return unaryPins(p, f), nil
}
