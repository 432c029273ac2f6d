package math

import "golang.org/x/exp/constraints"

// DivCeil returns dividend/divisor rounded up, for non-negative operands.
func DivCeil[T constraints.Integer](dividend, divisor T) T {
	q := dividend / divisor
	if dividend%divisor != 0 {
		q++
	}
	return q
}

// DivFloor returns dividend/divisor rounded down, for non-negative operands.
func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}
