package seq

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/maybe"
	"github.com/kbukum/seqkit/tuple"
)

const (
	// DefaultEqualBudget is the number of element pairs Equal compares
	// before giving up.
	DefaultEqualBudget = 1_000_000
	// DefaultShowLimit is the number of elements Show renders.
	DefaultShowLimit = 50
)

// Reduce folds s from the left. s must be finite.
func Reduce[T, R any](s Sequence[T], init R, fn func(R, T) R) R {
	acc := init
	it := s.Iterator()
	for {
		val, ok := it.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, val)
	}
}

// FoldL is an alias of Reduce.
func FoldL[T, R any](s Sequence[T], init R, fn func(R, T) R) R {
	return Reduce(s, init, fn)
}

// FoldR folds s from the right by materializing it first. s must be finite.
func FoldR[T, R any](s Sequence[T], init R, fn func(T, R) R) R {
	items := ToSlice(s)
	acc := init
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(items[i], acc)
	}
	return acc
}

// Equal compares a and b element by element, giving up after
// DefaultEqualBudget pairs.
func Equal[T comparable](a, b Iterable[T]) bool {
	return EqualBudget(a, b, DefaultEqualBudget)
}

// EqualBudget compares a and b, reporting false on the first mismatch, on a
// length difference, or once budget pairs have matched without both inputs
// ending.
func EqualBudget[T comparable](a, b Iterable[T], budget int) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y }, budget)
}

// EqualFunc is EqualBudget with a custom element comparison.
func EqualFunc[T any](a, b Iterable[T], eq func(T, T) bool, budget int) bool {
	left, right := a.Iterator(), b.Iterator()
	for i := 0; i <= budget; i++ {
		x, okx := left.Next()
		y, oky := right.Next()
		if !okx || !oky {
			return okx == oky
		}
		if !eq(x, y) {
			return false
		}
	}
	return false
}

// Show renders up to DefaultShowLimit values as "[e1,e2,...]".
func Show[T any](s Sequence[T]) string {
	return ShowN(s, DefaultShowLimit)
}

// ShowN renders up to limit values as "[e1,e2,...]".
func ShowN[T any](s Sequence[T], limit int) string {
	parts := Reduce(Take(s, limit), make([]string, 0), func(acc []string, v T) []string {
		return append(acc, fmt.Sprint(v))
	})
	return "[" + strings.Join(parts, ",") + "]"
}

// Head returns the first value without disturbing later iterations of s.
func Head[T any](s Sequence[T]) maybe.Maybe[T] {
	v, ok := s.Iterator().Next()
	return maybe.FromOK(v, ok)
}

// IsEmpty reports whether s has no values.
func IsEmpty[T any](s Sequence[T]) bool {
	_, ok := s.Iterator().Next()
	return !ok
}

// Uncons splits s into its first value and the remaining sequence. Only the
// head is pulled; the tail stays lazy.
func Uncons[T any](s Sequence[T]) maybe.Maybe[tuple.Pair[T, Sequence[T]]] {
	return maybe.Map(Head(s), func(h T) tuple.Pair[T, Sequence[T]] {
		return tuple.Of(h, Drop(s, 1))
	})
}

// Max returns the greatest value, or an EMPTY_SEQUENCE error. s must be finite.
func Max[T cmp.Ordered](s Sequence[T]) (T, error) {
	return MaxFunc(s, cmp.Less[T])
}

// MaxFunc returns the greatest value according to less. Among equal values
// the first is kept.
func MaxFunc[T any](s Sequence[T], less func(a, b T) bool) (T, error) {
	m := SafeMaxFunc(s, less)
	if v, ok := m.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.EmptySequence("Max")
}

// Min returns the least value, or an EMPTY_SEQUENCE error. s must be finite.
func Min[T cmp.Ordered](s Sequence[T]) (T, error) {
	return MinFunc(s, cmp.Less[T])
}

// MinFunc returns the least value according to less. Among equal values the
// first is kept.
func MinFunc[T any](s Sequence[T], less func(a, b T) bool) (T, error) {
	m := SafeMinFunc(s, less)
	if v, ok := m.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.EmptySequence("Min")
}

// SafeMax returns Just the greatest value, or Nothing for an empty sequence.
func SafeMax[T cmp.Ordered](s Sequence[T]) maybe.Maybe[T] {
	return SafeMaxFunc(s, cmp.Less[T])
}

// SafeMaxFunc is SafeMax with a custom ordering.
func SafeMaxFunc[T any](s Sequence[T], less func(a, b T) bool) maybe.Maybe[T] {
	return best(s, func(cur, cand T) bool { return less(cur, cand) })
}

// SafeMin returns Just the least value, or Nothing for an empty sequence.
func SafeMin[T cmp.Ordered](s Sequence[T]) maybe.Maybe[T] {
	return SafeMinFunc(s, cmp.Less[T])
}

// SafeMinFunc is SafeMin with a custom ordering.
func SafeMinFunc[T any](s Sequence[T], less func(a, b T) bool) maybe.Maybe[T] {
	return best(s, func(cur, cand T) bool { return less(cand, cur) })
}

// best keeps the first value and replaces it whenever replace(cur, cand).
func best[T any](s Sequence[T], replace func(cur, cand T) bool) maybe.Maybe[T] {
	it := s.Iterator()
	cur, ok := it.Next()
	if !ok {
		return maybe.Nothing[T]()
	}
	for {
		cand, ok := it.Next()
		if !ok {
			return maybe.Just(cur)
		}
		if replace(cur, cand) {
			cur = cand
		}
	}
}

// ForEach calls fn for every value. s must be finite.
func ForEach[T any](s Sequence[T], fn func(T)) {
	it := s.Iterator()
	for {
		val, ok := it.Next()
		if !ok {
			return
		}
		fn(val)
	}
}

// ToSlice collects every value into a new slice. s must be finite.
func ToSlice[T any](s Sequence[T]) []T {
	return Reduce(s, make([]T, 0), func(acc []T, v T) []T { return append(acc, v) })
}

// Len counts the values. s must be finite.
func Len[T any](s Sequence[T]) int {
	return Reduce(s, 0, func(n int, _ T) int { return n + 1 })
}

// Last returns the final value. s must be finite.
func Last[T any](s Sequence[T]) maybe.Maybe[T] {
	return Reduce(s, maybe.Nothing[T](), func(_ maybe.Maybe[T], v T) maybe.Maybe[T] { return maybe.Just(v) })
}

// Nth returns the value at a zero-based index, or an OUT_OF_RANGE error.
func Nth[T any](s Sequence[T], index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, errors.OutOfRange(index, 0)
	}
	if v, ok := Head(Drop(s, index)).Get(); ok {
		return v, nil
	}
	return zero, errors.OutOfRange(index, Len(Take(s, index)))
}

// Sum adds the values. s must be finite.
func Sum[N Number](s Sequence[N]) N {
	return Reduce(s, N(0), func(acc, v N) N { return acc + v })
}

// Find returns the first value satisfying pred. Like Filter, it does not
// return on an infinite sequence without a match.
func Find[T any](s Sequence[T], pred func(T) bool) maybe.Maybe[T] {
	return Head(Filter(s, pred))
}

// AnyMatch reports whether some value satisfies pred.
func AnyMatch[T any](s Sequence[T], pred func(T) bool) bool {
	return Find(s, pred).IsJust()
}

// AllMatch reports whether every value satisfies pred. It stops at the
// first counterexample.
func AllMatch[T any](s Sequence[T], pred func(T) bool) bool {
	return !AnyMatch(s, func(v T) bool { return !pred(v) })
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s Sequence[T], v T) bool {
	return AnyMatch(s, func(x T) bool { return x == v })
}
