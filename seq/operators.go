package seq

import (
	"github.com/kbukum/seqkit/maybe"
	"github.com/kbukum/seqkit/tuple"
)

// Map transforms each value using fn. fn runs only when a value is pulled.
func Map[I, O any](s Sequence[I], fn func(I) O) Sequence[O] {
	return FromFunc(func() Iterator[O] {
		return &mapIter[I, O]{source: s.Iterator(), fn: fn}
	})
}

// Filter keeps only values that satisfy the predicate. On an infinite
// source with no further matches a single pull never returns; bound the
// source with TakeWhile or Take first.
func Filter[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &filterIter[T]{source: s.Iterator(), pred: pred}
	})
}

// Take yields at most n values and stops pulling the source once n values
// have been yielded.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &takeIter[T]{source: s.Iterator(), remaining: n}
	})
}

// TakeWhile yields values up to, not including, the first one failing pred.
func TakeWhile[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &takeWhileIter[T]{source: s.Iterator(), pred: pred}
	})
}

// Drop skips the first n values.
func Drop[T any](s Sequence[T], n int) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &dropIter[T]{source: s.Iterator(), skip: n}
	})
}

// DropWhile skips values while pred holds, then yields the rest.
func DropWhile[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &dropWhileIter[T]{source: s.Iterator(), pred: pred}
	})
}

// Cons prepends v.
func Cons[T any](v T, s Sequence[T]) Sequence[T] {
	return Concat(Pure(v), s)
}

// Snoc appends v.
func Snoc[T any](s Sequence[T], v T) Sequence[T] {
	return Concat(s, Pure(v))
}

// Append joins two sequences.
func Append[T any](a, b Sequence[T]) Sequence[T] {
	return Concat(a, b)
}

// Concat joins sequences in order. Each part is only asked for an iterator
// once the previous one is exhausted.
func Concat[T any](parts ...Sequence[T]) Sequence[T] {
	parts = append([]Sequence[T](nil), parts...)
	return FromFunc(func() Iterator[T] {
		return &concatIter[T]{parts: parts}
	})
}

// Flatten joins a sequence of sequences.
func Flatten[T any](ss Sequence[Sequence[T]]) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &flattenIter[T]{source: ss.Iterator()}
	})
}

// Bind maps each value to a sequence and flattens the results.
func Bind[I, O any](s Sequence[I], fn func(I) Sequence[O]) Sequence[O] {
	return Flatten(Map(s, fn))
}

// Cycle repeats s forever, acquiring a fresh iterator of s each time the
// current one is exhausted. Cycling an empty sequence yields nothing.
func Cycle[T any](s Sequence[T]) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &cycleIter[T]{seq: s}
	})
}

// ZipWith combines values positionally and stops at the shorter input.
func ZipWith[A, B, R any](a Sequence[A], b Sequence[B], fn func(A, B) R) Sequence[R] {
	return FromFunc(func() Iterator[R] {
		return &zipIter[A, B, R]{left: a.Iterator(), right: b.Iterator(), fn: fn}
	})
}

// Zip pairs values positionally.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[tuple.Pair[A, B]] {
	return ZipWith(a, b, tuple.Of[A, B])
}

// Enumerate pairs each value with its zero-based index.
func Enumerate[T any](s Sequence[T]) Sequence[tuple.Pair[int, T]] {
	return Zip(Naturals(), s)
}

// Reverse yields the values of s in reverse order. The first pull reads all
// of s, so s must be finite.
func Reverse[T any](s Sequence[T]) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &reverseIter[T]{source: s}
	})
}

// Scan yields init followed by every intermediate accumulator of a left fold.
func Scan[T, R any](s Sequence[T], init R, fn func(R, T) R) Sequence[R] {
	return FromFunc(func() Iterator[R] {
		return &scanIter[T, R]{source: s.Iterator(), acc: init, fn: fn}
	})
}

// Intersperse places sep between consecutive values.
func Intersperse[T any](s Sequence[T], sep T) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &intersperseIter[T]{source: s.Iterator(), sep: sep}
	})
}

// Chunk groups values into slices of up to size elements. The final chunk
// may be shorter. size <= 0 is treated as 1.
func Chunk[T any](s Sequence[T], size int) Sequence[[]T] {
	if size <= 0 {
		size = 1
	}
	return FromFunc(func() Iterator[[]T] {
		return &chunkIter[T]{source: s.Iterator(), size: size}
	})
}

// Distinct drops values already seen during the current iteration.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		seen := make(map[T]struct{})
		return &filterIter[T]{source: s.Iterator(), pred: func(v T) bool {
			if _, dup := seen[v]; dup {
				return false
			}
			seen[v] = struct{}{}
			return true
		}}
	})
}

// CatMaybes drops Nothing values and unwraps Just values.
func CatMaybes[T any](s Sequence[maybe.Maybe[T]]) Sequence[T] {
	return Map(Filter(s, maybe.Maybe[T].IsJust), func(m maybe.Maybe[T]) T {
		v, _ := m.Get()
		return v
	})
}

// Tap calls fn as a side-effect for each value, then passes the value
// through unchanged.
func Tap[T any](s Sequence[T], fn func(T)) Sequence[T] {
	return Map(s, func(v T) T {
		fn(v)
		return v
	})
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *mapIter[I, O]) Next() (O, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return it.fn(val), true
}

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if it.pred(val) {
			return val, true
		}
	}
}

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	val, ok := it.source.Next()
	if !ok {
		it.remaining = 0
	}
	return val, ok
}

type takeWhileIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	val, ok := it.source.Next()
	if !ok || !it.pred(val) {
		it.done = true
		return zero, false
	}
	return val, true
}

type dropIter[T any] struct {
	source Iterator[T]
	skip   int
}

func (it *dropIter[T]) Next() (T, bool) {
	for it.skip > 0 {
		it.skip--
		if _, ok := it.source.Next(); !ok {
			it.skip = 0
			var zero T
			return zero, false
		}
	}
	return it.source.Next()
}

type dropWhileIter[T any] struct {
	source  Iterator[T]
	pred    func(T) bool
	dropped bool
}

func (it *dropWhileIter[T]) Next() (T, bool) {
	if it.dropped {
		return it.source.Next()
	}
	it.dropped = true
	for {
		val, ok := it.source.Next()
		if !ok || !it.pred(val) {
			return val, ok
		}
	}
}

type concatIter[T any] struct {
	parts   []Sequence[T]
	index   int
	current Iterator[T]
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.parts) {
		if it.current == nil {
			it.current = it.parts[it.index].Iterator()
		}
		if val, ok := it.current.Next(); ok {
			return val, true
		}
		it.current = nil
		it.index++
	}
	var zero T
	return zero, false
}

type flattenIter[T any] struct {
	source  Iterator[Sequence[T]]
	current Iterator[T]
}

func (it *flattenIter[T]) Next() (T, bool) {
	for {
		if it.current != nil {
			if val, ok := it.current.Next(); ok {
				return val, true
			}
			it.current = nil
		}
		inner, ok := it.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		it.current = inner.Iterator()
	}
}

type cycleIter[T any] struct {
	seq     Sequence[T]
	current Iterator[T]
	empty   bool
}

func (it *cycleIter[T]) Next() (T, bool) {
	var zero T
	if it.empty {
		return zero, false
	}
	if it.current != nil {
		if val, ok := it.current.Next(); ok {
			return val, true
		}
	}
	it.current = it.seq.Iterator()
	val, ok := it.current.Next()
	if !ok {
		it.empty = true
		return zero, false
	}
	return val, true
}

type zipIter[A, B, R any] struct {
	left  Iterator[A]
	right Iterator[B]
	fn    func(A, B) R
	done  bool
}

func (it *zipIter[A, B, R]) Next() (R, bool) {
	var zero R
	if it.done {
		return zero, false
	}
	a, ok := it.left.Next()
	if !ok {
		it.done = true
		return zero, false
	}
	b, ok := it.right.Next()
	if !ok {
		it.done = true
		return zero, false
	}
	return it.fn(a, b), true
}

type scanIter[T, R any] struct {
	source  Iterator[T]
	acc     R
	fn      func(R, T) R
	started bool
}

func (it *scanIter[T, R]) Next() (R, bool) {
	if !it.started {
		it.started = true
		return it.acc, true
	}
	val, ok := it.source.Next()
	if !ok {
		var zero R
		return zero, false
	}
	it.acc = it.fn(it.acc, val)
	return it.acc, true
}

type intersperseIter[T any] struct {
	source     Iterator[T]
	sep        T
	started    bool
	pending    T
	hasPending bool
}

func (it *intersperseIter[T]) Next() (T, bool) {
	if it.hasPending {
		it.hasPending = false
		return it.pending, true
	}
	val, ok := it.source.Next()
	if !ok {
		return val, false
	}
	if !it.started {
		it.started = true
		return val, true
	}
	it.pending, it.hasPending = val, true
	return it.sep, true
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *chunkIter[T]) Next() ([]T, bool) {
	if it.done {
		return nil, false
	}
	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok := it.source.Next()
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}

type reverseIter[T any] struct {
	source Sequence[T]
	items  []T
	loaded bool
}

func (it *reverseIter[T]) Next() (T, bool) {
	if !it.loaded {
		it.items = ToSlice(it.source)
		it.loaded = true
	}
	n := len(it.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := it.items[n-1]
	it.items = it.items[:n-1]
	return v, true
}
