// Package jinq provides LINQ-style query comprehensions over any value
// implementing monad.Monad.
//
// A Query only ever calls Pure, Empty, Fmap and And on the wrapped value, so
// the same chain runs over a seq.Sequence (every element), a maybe.Maybe
// (all or nothing) or a jsonm.Value (JSON tree walking):
//
//	evens := jinq.From(seq.Range(7)).
//	    Where(jinq.Pred(func(n int) bool { return n%2 == 0 })).
//	    Result()
//	seq.Cast[int](evens) // [0,2,4,6]
//
// Each call returns a new Query; a Query is never mutated.
package jinq

import (
	"github.com/kbukum/seqkit/monad"
	"github.com/kbukum/seqkit/tuple"
)

// Pair is the carrier produced by PairWith, Combine and Let.
type Pair = tuple.Pair[any, any]

// Query wraps a monad value.
type Query struct {
	m monad.Monad
}

// From starts a query over m.
func From(m monad.Monad) Query {
	return Query{m: m}
}

// Select transforms every element.
func (q Query) Select(f func(any) any) Query {
	return Query{m: q.m.Fmap(f)}
}

// Map is an alias of Select.
func (q Query) Map(f func(any) any) Query {
	return q.Select(f)
}

// Where keeps the elements satisfying pred.
func (q Query) Where(pred func(any) bool) Query {
	m := q.m
	return Query{m: m.And(func(x any) monad.Monad {
		if pred(x) {
			return m.Pure(x)
		}
		return m.Empty()
	})}
}

// Inside replaces every element with the elements of f(element). Chaining
// Inside walks nested optional or repeated structure.
func (q Query) Inside(f func(any) monad.Monad) Query {
	return Query{m: q.m.And(f)}
}

// FromIn is an alias of Inside.
func (q Query) FromIn(f func(any) monad.Monad) Query {
	return q.Inside(f)
}

// PairWith pairs every element with every element of other.
func (q Query) PairWith(other monad.Monad) Query {
	return q.Combine(func(any) monad.Monad { return other })
}

// Combine pairs every element x with every element of ctor(x), which allows
// generators that depend on earlier ones.
func (q Query) Combine(ctor func(any) monad.Monad) Query {
	return Query{m: q.m.And(func(x any) monad.Monad {
		return ctor(x).Fmap(func(y any) any { return tuple.Of[any, any](x, y) })
	})}
}

// Let pairs every element with a value derived from it.
func (q Query) Let(f func(any) any) Query {
	return q.Select(func(x any) any { return tuple.Of[any, any](x, f(x)) })
}

// Result returns the wrapped monad value.
func (q Query) Result() monad.Monad {
	return q.m
}
