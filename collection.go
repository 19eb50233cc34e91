package odp

import (
	"iter"
	"slices"
)

// Bag is an ordered collection of decoded records.
type Bag[T any] []T

// Len returns the number of records held, which can be less than the server-reported count.
func (b Bag[T]) Len() int { return len(b) }

// At returns the i-th record. It panics when i is out of range.
func (b Bag[T]) At(i int) T { return b[i] }

// All iterates over the records in order.
func (b Bag[T]) All() iter.Seq[T] {
	return slices.Values(b)
}

// Find returns the first record matching pred.
func (b Bag[T]) Find(pred func(T) bool) (T, bool) {
	for _, v := range b {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching pred, in their original order.
func (b Bag[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, v := range b {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// SortBy returns a stably sorted copy. The receiver is not modified.
func (b Bag[T]) SortBy(cmp func(a, c T) int, reverse bool) []T {
	out := slices.Clone([]T(b))
	if reverse {
		slices.SortStableFunc(out, func(x, y T) int { return cmp(y, x) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}
