// Package seq provides lazy, composable, possibly infinite sequences.
//
// A Sequence is a factory of iterators: every terminal operation or range
// loop asks for a fresh Iterator, so the same Sequence can be consumed any
// number of times without the iterations interfering, provided the closures
// it was built from are pure. Operators never pull from their input until
// they are pulled themselves.
//
// # Constructors
//
//   - Generate, Iterate, Repeat: unbounded or predicate-bounded progressions
//   - Of, Pure, Nil, FromSlice, FromString, FromIterable
//   - Range, RangeBetween, RangeStep: inclusive arithmetic progressions
//   - Naturals, Squares, Fibonacci, Primes, AngleDivision
//
// # Operators (lazy)
//
//   - Map, Filter, Take, TakeWhile, Drop, DropWhile
//   - Cons, Snoc, Concat, Append, Flatten, Bind
//   - Cycle, ZipWith, Zip, Enumerate, Scan, Intersperse, Chunk, Distinct
//   - Reverse (materializes its input when iterated)
//   - CatMaybes, Tap
//
// # Terminals (eager)
//
// Reduce, FoldR, Equal, Show, Head, IsEmpty, Max, Min, SafeMax, SafeMin,
// Uncons, ForEach, ToSlice, Len, Last, Nth, Sum.
//
// Terminals that read every element (Reduce, FoldR, Reverse, Max, Min, Len,
// ToSlice, Sum) never return on an infinite sequence; bound it with Take or
// TakeWhile first. Equal is the exception: it gives up after a budget of
// element pairs and reports false.
//
// # Usage
//
//	evens := seq.Filter(seq.Naturals(), func(n int) bool { return n%2 == 0 })
//	fmt.Println(seq.Show(evens.Take(5))) // [0,2,4,6,8]
//
// Sequence also implements monad.Monad, so it can be queried with jinq.
package seq
