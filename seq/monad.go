package seq

import (
	"fmt"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/monad"
)

// Pure returns a one-element sequence holding v.
func (s Sequence[T]) Pure(v any) monad.Monad { return Pure(v) }

// Empty returns the empty sequence.
func (s Sequence[T]) Empty() monad.Monad { return Nil[any]() }

// Fmap applies f lazily to every value.
func (s Sequence[T]) Fmap(f func(any) any) monad.Monad {
	return Map(s, func(v T) any { return f(v) })
}

// And binds every value through f and lazily concatenates the results.
// Results that are not sequences must implement monad.Enumerable.
func (s Sequence[T]) And(f func(any) monad.Monad) monad.Monad {
	return Bind(s, func(v T) Sequence[any] { return Erase(f(v)) })
}

// Erase returns s with its values viewed as any.
func (s Sequence[T]) Erase() Sequence[any] {
	return Map(s, func(v T) any { return v })
}

type erasable interface {
	Erase() Sequence[any]
}

// Erase views a protocol value as a sequence of any. Sequences stay lazy;
// other monads must implement monad.Enumerable, whose Elements are read
// only when the result is iterated. Erase panics with a TYPE_MISMATCH
// AppError for anything else.
func Erase(m monad.Monad) Sequence[any] {
	switch mm := m.(type) {
	case Sequence[any]:
		return mm
	case erasable:
		return mm.Erase()
	case monad.Enumerable:
		return FromFunc(func() Iterator[any] {
			return &sliceIter[any]{items: mm.Elements()}
		})
	default:
		panic(errors.TypeMismatch("seq.Sequence or monad.Enumerable", m))
	}
}

// Cast recovers a typed sequence from a protocol value. Values are checked
// as they are pulled; a value that is not a T panics with a TYPE_MISMATCH
// AppError.
func Cast[T any](m monad.Monad) Sequence[T] {
	if s, ok := m.(Sequence[T]); ok {
		return s
	}
	return Map(Erase(m), func(v any) T {
		typed, ok := v.(T)
		if !ok && v != nil {
			var zero T
			panic(errors.TypeMismatch(fmt.Sprintf("%T", zero), v))
		}
		return typed
	})
}
