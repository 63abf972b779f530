package seq

// Type-preserving operators and terminals as methods, for fluent chains:
//
//	seq.Naturals().Filter(isOdd).Drop(2).Take(3).Show()

// Filter keeps values satisfying pred.
func (s Sequence[T]) Filter(pred func(T) bool) Sequence[T] { return Filter(s, pred) }

// Take yields at most n values.
func (s Sequence[T]) Take(n int) Sequence[T] { return Take(s, n) }

// TakeWhile yields values while pred holds.
func (s Sequence[T]) TakeWhile(pred func(T) bool) Sequence[T] { return TakeWhile(s, pred) }

// Drop skips n values.
func (s Sequence[T]) Drop(n int) Sequence[T] { return Drop(s, n) }

// DropWhile skips values while pred holds.
func (s Sequence[T]) DropWhile(pred func(T) bool) Sequence[T] { return DropWhile(s, pred) }

// Cons prepends v.
func (s Sequence[T]) Cons(v T) Sequence[T] { return Cons(v, s) }

// Snoc appends v.
func (s Sequence[T]) Snoc(v T) Sequence[T] { return Snoc(s, v) }

// Append joins others after s.
func (s Sequence[T]) Append(others ...Sequence[T]) Sequence[T] {
	return Concat(append([]Sequence[T]{s}, others...)...)
}

// Cycle repeats s forever.
func (s Sequence[T]) Cycle() Sequence[T] { return Cycle(s) }

// Reverse yields s backwards. s must be finite.
func (s Sequence[T]) Reverse() Sequence[T] { return Reverse(s) }

// Intersperse places sep between values.
func (s Sequence[T]) Intersperse(sep T) Sequence[T] { return Intersperse(s, sep) }

// Tap calls fn for each value as it passes.
func (s Sequence[T]) Tap(fn func(T)) Sequence[T] { return Tap(s, fn) }

// Pipe applies ops in order.
func (s Sequence[T]) Pipe(ops ...func(Sequence[T]) Sequence[T]) Sequence[T] {
	for _, op := range ops {
		s = op(s)
	}
	return s
}

// Head returns the first value.
func (s Sequence[T]) Head() (T, bool) { return Head(s).Get() }

// IsEmpty reports whether s has no values.
func (s Sequence[T]) IsEmpty() bool { return IsEmpty(s) }

// ForEach calls fn for every value. s must be finite.
func (s Sequence[T]) ForEach(fn func(T)) { ForEach(s, fn) }

// ToSlice collects s. s must be finite.
func (s Sequence[T]) ToSlice() []T { return ToSlice(s) }

// Len counts s. s must be finite.
func (s Sequence[T]) Len() int { return Len(s) }

// Show renders up to DefaultShowLimit values.
func (s Sequence[T]) Show() string { return Show(s) }

// EqualTo compares s with other using eq and DefaultEqualBudget.
func (s Sequence[T]) EqualTo(other Iterable[T], eq func(a, b T) bool) bool {
	return EqualFunc[T](s, other, eq, DefaultEqualBudget)
}

// String implements fmt.Stringer using Show.
func (s Sequence[T]) String() string { return Show(s) }
