package seq

import (
	"strings"
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/maybe"
)

func TestReduce_FoldL_FoldR(t *testing.T) {
	sum := Reduce(Range(4), 0, func(acc, n int) int { return acc + n })
	if sum != 10 {
		t.Errorf("Reduce sum = %d, want 10", sum)
	}
	left := FoldL(Of("a", "b", "c"), "", func(acc, s string) string { return acc + s })
	if left != "abc" {
		t.Errorf("FoldL = %q", left)
	}
	right := FoldR(Of("a", "b", "c"), "", func(s, acc string) string { return acc + s })
	if right != "cba" {
		t.Errorf("FoldR = %q", right)
	}
}

func TestEqual_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b Sequence[int]
		want bool
	}{
		{"same", Of(1, 2), Of(1, 2), true},
		{"prefix", Of(1, 2), Of(1, 2, 3), false},
		{"longer", Of(1, 2, 3), Of(1, 2), false},
		{"both empty", Nil[int](), Of[int](), true},
		{"mismatch", Of(1, 2), Of(1, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
	s := Range(20)
	if !Equal(s, s) {
		t.Error("Equal(s, s) should hold")
	}
}

func TestEqualBudget_FailsClosed(t *testing.T) {
	if EqualBudget(Naturals(), Naturals(), 100) {
		t.Error("infinite sequences must not compare equal")
	}
	if !EqualBudget(Of(1, 2, 3), Of(1, 2, 3), 3) {
		t.Error("budget equal to length should be enough")
	}
	if EqualBudget(Of(1, 2, 3), Of(1, 2, 3), 2) {
		t.Error("budget below length should fail")
	}
}

func TestEqualTo_Method(t *testing.T) {
	a := Of("A", "b")
	if !a.EqualTo(Of("a", "B"), strings.EqualFold) {
		t.Error("EqualTo with EqualFold should match")
	}
}

func TestShow(t *testing.T) {
	if got := Show(Of(1, 2, 3)); got != "[1,2,3]" {
		t.Errorf("Show = %q", got)
	}
	if got := Show(Nil[int]()); got != "[]" {
		t.Errorf("Show(empty) = %q", got)
	}
	if got := ShowN(Naturals(), 4); got != "[0,1,2,3]" {
		t.Errorf("ShowN = %q", got)
	}
	if got := Naturals().String(); strings.Count(got, ",") != DefaultShowLimit-1 {
		t.Errorf("Show should cap at %d elements, got %q", DefaultShowLimit, got)
	}
}

func TestHead_DoesNotConsume(t *testing.T) {
	s := Of(7, 8)
	if Head(s) != maybe.Just(7) {
		t.Errorf("Head = %v", Head(s))
	}
	if v, ok := s.Head(); !ok || v != 7 {
		t.Errorf("Head() = (%d, %v)", v, ok)
	}
	assertSlice(t, s.ToSlice(), []int{7, 8})
	if Head(Nil[int]()).IsJust() {
		t.Error("Head(empty) should be Nothing")
	}
	if IsEmpty(s) || !IsEmpty(Nil[int]()) {
		t.Error("IsEmpty mismatch")
	}
	if Naturals().IsEmpty() {
		t.Error("Naturals is not empty")
	}
}

func TestMaxMin(t *testing.T) {
	if v, err := Max(Of(1, 5, 3)); err != nil || v != 5 {
		t.Errorf("Max = (%d, %v), want 5", v, err)
	}
	if v, err := Min(Of(4, 1, 3)); err != nil || v != 1 {
		t.Errorf("Min = (%d, %v), want 1", v, err)
	}
	if _, err := Max(Nil[int]()); !errors.IsCode(err, errors.ErrCodeEmptySequence) {
		t.Errorf("Max(empty) err = %v, want EMPTY_SEQUENCE", err)
	}
	if _, err := Min(Nil[string]()); !errors.IsCode(err, errors.ErrCodeEmptySequence) {
		t.Errorf("Min(empty) err = %v, want EMPTY_SEQUENCE", err)
	}
}

func TestMaxFunc_CustomComparator(t *testing.T) {
	words := Of("go", "sequence", "lazy", "monadic")
	byLen := func(a, b string) bool { return len(a) < len(b) }
	if v, _ := MaxFunc(words, byLen); v != "sequence" {
		t.Errorf("MaxFunc = %q", v)
	}
	if v, _ := MinFunc(words, byLen); v != "go" {
		t.Errorf("MinFunc = %q", v)
	}
	first := Of("ab", "cd")
	if v, _ := MaxFunc(first, byLen); v != "ab" {
		t.Errorf("ties should keep the first value, got %q", v)
	}
}

func TestSafeMaxMin(t *testing.T) {
	if SafeMax(Nil[int]()).IsJust() {
		t.Error("SafeMax(empty) should be Nothing")
	}
	if SafeMax(Of(2, 9, 4)) != maybe.Just(9) {
		t.Error("SafeMax should be Just(9)")
	}
	if SafeMin(Of(2, 9, 4)) != maybe.Just(2) {
		t.Error("SafeMin should be Just(2)")
	}
	if SafeMin(Nil[float64]()).IsJust() {
		t.Error("SafeMin(empty) should be Nothing")
	}
}

func TestUncons(t *testing.T) {
	pulls := 0
	s := countingSeq(-1, &pulls)
	split, ok := Uncons(s).Get()
	if !ok {
		t.Fatal("Uncons on a non-empty sequence should succeed")
	}
	if split.First() != 0 {
		t.Errorf("head = %d, want 0", split.First())
	}
	if pulls != 1 {
		t.Errorf("Uncons pulled %d times, want 1", pulls)
	}
	assertSlice(t, split.Second().Take(3).ToSlice(), []int{1, 2, 3})
	if Uncons(Nil[int]()).IsJust() {
		t.Error("Uncons(empty) should be Nothing")
	}
}

func TestForEach_LenLastNth(t *testing.T) {
	total := 0
	Of(1, 2, 3).ForEach(func(n int) { total += n })
	if total != 6 {
		t.Errorf("ForEach total = %d", total)
	}
	if Len(Range(9)) != 10 {
		t.Errorf("Len = %d", Len(Range(9)))
	}
	if Last(Of(1, 2, 3)) != maybe.Just(3) {
		t.Error("Last should be Just(3)")
	}
	if Last(Nil[int]()).IsJust() {
		t.Error("Last(empty) should be Nothing")
	}
	if v, err := Nth(Naturals(), 42); err != nil || v != 42 {
		t.Errorf("Nth = (%d, %v)", v, err)
	}
	_, err := Nth(Of(1, 2), 5)
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeOutOfRange {
		t.Fatalf("Nth past end err = %v", err)
	}
	if appErr.Details["length"] != 2 {
		t.Errorf("length detail = %v, want 2", appErr.Details["length"])
	}
}

func TestSumFindContains(t *testing.T) {
	if Sum(Range(100)) != 5050 {
		t.Errorf("Sum = %d", Sum(Range(100)))
	}
	if Sum(Of(0.5, 0.25)) != 0.75 {
		t.Error("float Sum mismatch")
	}
	if Find(Naturals(), func(n int) bool { return n*n > 50 }) != maybe.Just(8) {
		t.Error("Find should return 8")
	}
	if !Contains(Of("a", "b"), "b") || Contains(Of("a"), "z") {
		t.Error("Contains mismatch")
	}
	if !AllMatch(Of(2, 4), func(n int) bool { return n%2 == 0 }) {
		t.Error("AllMatch should hold")
	}
	if AllMatch(Naturals(), func(n int) bool { return n < 10 }) {
		t.Error("AllMatch should stop at the first counterexample")
	}
	if !AnyMatch(Naturals(), func(n int) bool { return n == 3 }) {
		t.Error("AnyMatch should find 3")
	}
}
