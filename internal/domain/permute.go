package domain

import (
	"errors"
	"iter"
)

// ErrEmptySequence is the panic value of Permute and Permutations when
// called with an empty sequence.
var ErrEmptySequence = errors.New("permute: empty sequence")

// Permute calls visit once for every ordering of s, n! calls in total for
// len(s) == n. Elements at different positions are distinct even when equal.
//
// The orderings are produced in place with Heap's algorithm: consecutive
// calls see arrangements that differ by exactly one swap, and no ordering is
// allocated. The slice passed to visit is s itself and is mutated after
// visit returns, so visit must copy whatever it keeps. When Permute returns,
// s holds the last visited arrangement.
//
// Permute panics with ErrEmptySequence if s is empty.
func Permute[T any](s []T, visit func([]T)) {
	if len(s) == 0 {
		panic(ErrEmptySequence)
	}

	heapPermute(len(s), s, func(arrangement []T) bool {
		visit(arrangement)
		return true
	})
}

// Permutations returns the orderings of s, in Permute order, as a sequence.
// Each yielded slice is s itself, under the same aliasing rules as Permute.
// Stopping the range loop stops the enumeration; ranging again restarts from
// the current arrangement of s.
//
// Permutations panics with ErrEmptySequence if s is empty.
func Permutations[T any](s []T) iter.Seq[[]T] {
	if len(s) == 0 {
		panic(ErrEmptySequence)
	}

	return func(yield func([]T) bool) {
		heapPermute(len(s), s, yield)
	}
}

// heapPermute enumerates the orderings of s[:k] and reports whether the
// enumeration ran to completion.
func heapPermute[T any](k int, s []T, yield func([]T) bool) bool {
	if k == 1 {
		return yield(s)
	}

	if !heapPermute(k-1, s, yield) {
		return false
	}

	for i := 0; i < k-1; i++ {
		if k%2 == 0 {
			s[i], s[k-1] = s[k-1], s[i]
		} else {
			s[0], s[k-1] = s[k-1], s[0]
		}

		if !heapPermute(k-1, s, yield) {
			return false
		}
	}

	return true
}
