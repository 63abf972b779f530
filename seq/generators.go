package seq

import (
	"math"

	"github.com/kbukum/seqkit/tuple"
)

// Naturals yields 0, 1, 2, ...
func Naturals() Sequence[int] {
	return Iterate(0, func(n int) int { return n + 1 })
}

// Squares yields 0, 1, 4, 9, ...
func Squares() Sequence[int] {
	return Map(Naturals(), func(n int) int { return n * n })
}

// Fibonacci yields 0, 1, 1, 2, 3, 5, ...
func Fibonacci() Sequence[int] {
	pairs := Iterate(tuple.Of(0, 1), func(p tuple.Pair[int, int]) tuple.Pair[int, int] {
		return tuple.Of(p.Second(), p.First()+p.Second())
	})
	return Map(pairs, tuple.Pair[int, int].First)
}

// Primes yields 2, 3, 5, 7, ... by trial division.
func Primes() Sequence[int] {
	return Filter(Iterate(2, func(n int) int { return n + 1 }), isPrime)
}

func isPrime(n int) bool {
	divisors := TakeWhile(Iterate(2, func(d int) int { return d + 1 }), func(d int) bool { return d*d <= n })
	return AllMatch(divisors, func(d int) bool { return n%d != 0 })
}

// AngleDivision yields n equally spaced angles in radians, starting at 0
// and covering [0, 2π). n <= 0 yields nothing.
func AngleDivision(n int) Sequence[float64] {
	step := 2 * math.Pi / float64(n)
	return Map(Take(Naturals(), n), func(i int) float64 { return float64(i) * step })
}
