package aoc

import (
	"math/bits"
	"slices"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// TopN returns the n largest values of in, largest first. It returns all
// of in, sorted, if there are fewer than n values. in is not modified.
func TopN[T constraints.Ordered](in []T, n int) []T {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return out[:min(n, len(out))]
}

// Uint parses s as a base 10 unsigned integer. Surrounding whitespace is
// not allowed.
func Uint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// AddUint returns a+b and whether the sum fit in a uint64.
func AddUint(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
