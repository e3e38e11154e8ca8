package xnum

import "math/bits"

// pairwise reduces xs with op along a balanced binary tree.
//
// Partial results are kept on a stack: after pushing the i-th element
// (counting from 1), the number of trailing zero bits of i tells how many
// completed subtrees are merged into it. The leftover stack entries are
// merged from the top down once the input is exhausted.
// A NaN element stops the reduction immediately.
// The identity is returned only for an empty input, so signed zeros survive
// single-element reductions.
func pairwise[T interface{ IsNaN() bool }](xs []T, identity, nan T, op func(T, T) T) T {
	if len(xs) == 0 {
		return identity
	}
	stack := make([]T, 0, bits.Len(uint(len(xs)))+1)
	for i, x := range xs {
		if x.IsNaN() {
			return nan
		}
		s := x
		for j := bits.TrailingZeros(uint(i + 1)); j > 0; j-- {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s = op(top, s)
		}
		stack = append(stack, s)
	}
	s := stack[len(stack)-1]
	for j := len(stack) - 2; j >= 0; j-- {
		s = op(stack[j], s)
	}
	return s
}
