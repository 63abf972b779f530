// Package monad defines the four-operation protocol shared by Sequence,
// Maybe and the JSON monad, and consumed by the jinq query layer.
//
// Go methods cannot introduce type parameters, so the protocol is expressed
// over erased elements. Concrete packages keep typed free functions
// (seq.Map, maybe.Map) for callers that know the element type, and offer a
// Cast helper to recover a typed value from a protocol result.
//
// Every implementation satisfies:
//
//   - functor identity:    m.Fmap(id) ~ m
//   - functor composition: m.Fmap(g∘f) ~ m.Fmap(f).Fmap(g)
//   - left identity:       m.Pure(x).And(f) ~ f(x)
//   - right identity:      m.And(m.Pure) ~ m
//   - associativity:       m.And(f).And(g) ~ m.And(func(x) { return f(x).And(g) })
//
// jinq relies only on these laws, so any new type satisfying them works
// with it unmodified.
package monad

// Monad is the protocol capability set.
type Monad interface {
	// Pure lifts a value into a monad of the receiver's kind.
	Pure(v any) Monad
	// Empty returns the absorbing value of the receiver's kind.
	Empty() Monad
	// Fmap applies f to every element.
	Fmap(f func(any) any) Monad
	// And binds every element through f and joins the results.
	And(f func(any) Monad) Monad
}

// Enumerable is implemented by finite monads whose elements can be listed.
// Sequence-like monads use it to join And results of a foreign kind.
type Enumerable interface {
	Elements() []any
}

// Identity returns its argument. It is the neutral element of Fmap.
func Identity(v any) any { return v }

// Compose returns g∘f.
func Compose(f, g func(any) any) func(any) any {
	return func(v any) any { return g(f(v)) }
}

// Lift binds using a pure function, returning m.Pure(f(x)) for each element.
func Lift(m Monad, f func(any) any) func(any) Monad {
	return func(v any) Monad { return m.Pure(f(v)) }
}
