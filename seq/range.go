package seq

import "golang.org/x/exp/constraints"

// Number is the set of types Range and Sum accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range yields 0, 1, ..., n inclusive. A negative n yields n, ..., 0.
func Range[N Number](n N) Sequence[N] {
	return RangeStep(0, n, 1)
}

// RangeBetween yields from..to inclusive with a unit step. The bounds are
// ordered first, so RangeBetween(4, 2) is [2,3,4].
func RangeBetween[N Number](from, to N) Sequence[N] {
	return RangeStep(from, to, 1)
}

// RangeStep yields the inclusive progression from, from+step, ... bounded by
// to. When the sign of step disagrees with the direction from from to to,
// the bounds are swapped, so RangeStep(4, 2, 1) is [2,3,4] and
// RangeStep(2, 4, -1) is [4,3,2]. A zero step yields the empty sequence.
// The progression ends at the last value within bounds even when the next
// step would overflow N.
func RangeStep[N Number](from, to, step N) Sequence[N] {
	if step == 0 {
		return Nil[N]()
	}
	if (from > to && step > 0) || (from < to && step < 0) {
		from, to = to, from
	}
	return FromFunc(func() Iterator[N] {
		return &rangeIter[N]{cur: from, to: to, step: step}
	})
}

type rangeIter[N Number] struct {
	cur, to, step N
	done          bool
}

func (it *rangeIter[N]) Next() (N, bool) {
	if it.done {
		var zero N
		return zero, false
	}
	v := it.cur
	next := v + it.step
	if it.step > 0 {
		it.done = next < v || next > it.to
	} else {
		it.done = next > v || next < it.to
	}
	it.cur = next
	return v, true
}
