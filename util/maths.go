package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}

func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func CeilDiv[T ~int32 | ~int64 | ~uint32 | ~uint64 | ~int](a T, b T) T {
	return (a + b - 1) / b
}

// FloorMod returns a modulo b with the sign of b.
func FloorMod(a int32, b int32) int32 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// CheckedMul32 multiplies two int32 values and reports whether the result
// stayed inside the int32 range.
func CheckedMul32(a int32, b int32) (int32, bool) {
	r := int64(a) * int64(b)
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, false
	}
	return int32(r), true
}

func CheckedAdd32(a int32, b int32) (int32, bool) {
	r := int64(a) + int64(b)
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, false
	}
	return int32(r), true
}

// CheckedMul64 is CheckedMul32 for int64 totals (image area times channel
// counts can exceed 32 bits long before it exceeds 64).
func CheckedMul64(a int64, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}
