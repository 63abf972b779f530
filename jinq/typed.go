package jinq

import (
	"fmt"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/monad"
)

// Fn adapts a typed function for Select.
func Fn[T, U any](f func(T) U) func(any) any {
	return func(x any) any { return f(as[T](x)) }
}

// Pred adapts a typed predicate for Where.
func Pred[T any](f func(T) bool) func(any) bool {
	return func(x any) bool { return f(as[T](x)) }
}

// Step adapts a typed function for Inside and Combine.
func Step[T any, M monad.Monad](f func(T) M) func(any) monad.Monad {
	return func(x any) monad.Monad { return f(as[T](x)) }
}

// Split adapts a typed two-argument function to the Pair elements produced
// by PairWith, Combine and Let.
func Split[A, B, R any](f func(A, B) R) func(any) any {
	return func(x any) any {
		p := as[Pair](x)
		return f(as[A](p.First()), as[B](p.Second()))
	}
}

func as[T any](x any) T {
	v, ok := x.(T)
	if !ok && x != nil {
		var zero T
		panic(errors.TypeMismatch(fmt.Sprintf("%T", zero), x))
	}
	return v
}
