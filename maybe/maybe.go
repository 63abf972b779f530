// Package maybe provides an optional value type implementing the monad
// protocol with cardinality zero (Nothing) or one (Just).
package maybe

import (
	"fmt"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/monad"
)

// Maybe holds either nothing or exactly one value. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing returns the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Just(*p), or Nothing when p is nil.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOK lifts a comma-ok result.
func FromOK[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.ok }

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool { return !m.ok }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

// OrElse returns the value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// OrElseGet returns the value, or the result of fn when absent.
func (m Maybe[T]) OrElseGet(fn func() T) T {
	if m.ok {
		return m.value
	}
	return fn()
}

// Filter keeps the value only if pred holds.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.ok && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// Or returns m when present, otherwise alt.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return alt
}

// String renders "Just(v)" or "Nothing".
func (m Maybe[T]) String() string {
	if !m.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map applies fn to the value, if any.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return Just(fn(m.value))
}

// Bind applies fn to the value, if any, and returns its result.
func Bind[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return fn(m.value)
}

// --- monad protocol ---

// Pure returns Just(v).
func (m Maybe[T]) Pure(v any) monad.Monad { return Just(v) }

// Empty returns Nothing.
func (m Maybe[T]) Empty() monad.Monad { return Nothing[any]() }

// Fmap applies f to the value, if any.
func (m Maybe[T]) Fmap(f func(any) any) monad.Monad {
	if !m.ok {
		return Nothing[any]()
	}
	return Just(f(m.value))
}

// And returns f(value), or Nothing when absent. The result of f is returned
// as is, whatever its kind.
func (m Maybe[T]) And(f func(any) monad.Monad) monad.Monad {
	if !m.ok {
		return Nothing[any]()
	}
	return f(m.value)
}

// Elements returns the value as a one-element slice, or nil.
func (m Maybe[T]) Elements() []any {
	if !m.ok {
		return nil
	}
	return []any{m.value}
}

func (m Maybe[T]) erased() (any, bool) { return m.value, m.ok }

type erasedMaybe interface {
	erased() (any, bool)
}

// Cast recovers a typed Maybe from a protocol value. A Maybe of any element
// type is accepted; other Enumerable monads contribute their first element.
// Cast panics with a TYPE_MISMATCH AppError if the value cannot be viewed as
// a Maybe[T].
func Cast[T any](m monad.Monad) Maybe[T] {
	var (
		v  any
		ok bool
	)
	switch mm := m.(type) {
	case Maybe[T]:
		return mm
	case erasedMaybe:
		v, ok = mm.erased()
	case monad.Enumerable:
		if els := mm.Elements(); len(els) > 0 {
			v, ok = els[0], true
		}
	default:
		panic(errors.TypeMismatch("maybe.Maybe", m))
	}
	if !ok {
		return Nothing[T]()
	}
	typed, isT := v.(T)
	if !isT && v != nil {
		var zero T
		panic(errors.TypeMismatch(fmt.Sprintf("%T", zero), v))
	}
	return Just(typed)
}
