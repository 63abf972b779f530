// Package tuple provides immutable value carriers.
package tuple

import "fmt"

// Pair is an immutable 2-tuple.
type Pair[A, B any] struct {
	first  A
	second B
}

// Of creates a Pair.
func Of[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

// Curry returns a function completing a Pair whose first element is fixed.
func Curry[A, B any](first A) func(B) Pair[A, B] {
	return func(second B) Pair[A, B] {
		return Of(first, second)
	}
}

// First returns the first element.
func (p Pair[A, B]) First() A { return p.first }

// Second returns the second element.
func (p Pair[A, B]) Second() B { return p.second }

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) { return p.first, p.second }

// Swap returns a Pair with the elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] { return Of(p.second, p.first) }

// Select applies a selector to both elements.
func Select[A, B, R any](p Pair[A, B], selector func(A, B) R) R {
	return selector(p.first, p.second)
}

// MapFirst transforms the first element.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Of(fn(p.first), p.second)
}

// MapSecond transforms the second element.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Of(p.first, fn(p.second))
}

// String renders the pair as "(first,second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.first, p.second)
}
