package seq

import "iter"

// Iterator provides pull-based sequential access to a stream of values.
// An Iterator is owned by the single consumer that acquired it.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
}

// Iterable is anything that can hand out fresh iterators.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// IteratorFunc adapts a closure to Iterator.
type IteratorFunc[T any] func() (T, bool)

// Next calls f.
func (f IteratorFunc[T]) Next() (T, bool) { return f() }

// Sequence is a lazy, re-iterable stream of values.
// The zero value is the empty sequence.
type Sequence[T any] struct {
	create func() Iterator[T]
}

// Iterator returns a fresh iterator positioned before the first element.
func (s Sequence[T]) Iterator() Iterator[T] {
	if s.create == nil {
		return emptyIter[T]{}
	}
	return s.create()
}

// All returns the sequence as a range-over-func iterator.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// --- Constructors ---

// FromFunc creates a sequence from an iterator factory. The factory must
// return a new, independent iterator on every call.
func FromFunc[T any](fn func() Iterator[T]) Sequence[T] {
	return Sequence[T]{create: fn}
}

// FromIterable creates a sequence backed by it.
func FromIterable[T any](it Iterable[T]) Sequence[T] {
	return FromFunc(it.Iterator)
}

// Generate yields start, next(start), next(next(start)), ... while the
// current value satisfies while. next is applied once to the last yielded
// value to find the value that fails while.
func Generate[T any](start T, while func(T) bool, next func(T) T) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &generateIter[T]{cur: start, while: while, next: next}
	})
}

// Iterate yields start, next(start), ... forever.
func Iterate[T any](start T, next func(T) T) Sequence[T] {
	return Generate(start, always[T], next)
}

// Repeat yields v forever.
func Repeat[T any](v T) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return IteratorFunc[T](func() (T, bool) { return v, true })
	})
}

// Of creates a finite sequence of the given values.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// Pure creates a one-element sequence.
func Pure[T any](v T) Sequence[T] {
	return Of(v)
}

// Nil returns the empty sequence.
func Nil[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Empty is an alias of Nil.
func Empty[T any]() Sequence[T] {
	return Nil[T]()
}

// FromSlice creates a sequence over items. The slice is not copied; do not
// mutate it while the sequence is in use.
func FromSlice[T any](items []T) Sequence[T] {
	return FromFunc(func() Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// FromString creates a sequence of the runes of str.
func FromString(str string) Sequence[rune] {
	return FromFunc(func() Iterator[rune] {
		return &sliceIter[rune]{items: []rune(str)}
	})
}

// --- Internal iterators ---

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}

type generateIter[T any] struct {
	cur     T
	while   func(T) bool
	next    func(T) T
	started bool
	done    bool
}

func (it *generateIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if it.started {
		it.cur = it.next(it.cur)
	}
	it.started = true
	if !it.while(it.cur) {
		it.done = true
		return zero, false
	}
	return it.cur, true
}

func always[T any](T) bool { return true }
