package internal

import (
	"iter"
	"slices"
)

// Permutations iterates over every ordering of values, using Heap's
// algorithm. Each yielded slice is a fresh copy owned by the consumer.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		a := slices.Clone(values)
		if !yield(slices.Clone(a)) {
			return
		}

		c := make([]int, len(a))
		for i := 0; i < len(a); {
			if c[i] < i {
				if i%2 == 0 {
					a[0], a[i] = a[i], a[0]
				} else {
					a[c[i]], a[i] = a[i], a[c[i]]
				}
				if !yield(slices.Clone(a)) {
					return // Stop if the consumer stops
				}
				c[i]++
				i = 0
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
