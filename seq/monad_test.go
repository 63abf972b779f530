package seq

import (
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/maybe"
	"github.com/kbukum/seqkit/monad"
	"github.com/kbukum/seqkit/monad/monadtest"
)

func observe(m monad.Monad) any {
	return ToSlice(Erase(m))
}

func TestProtocol_Laws(t *testing.T) {
	monadtest.Check(t, monadtest.Laws{
		Unit:    Nil[int](),
		Samples: []monad.Monad{Of(1, 2, 3), Nil[int](), Range(5)},
		Values:  []any{0, 4},
		F:       func(v any) monad.Monad { return Of[any](v, v.(int)*10) },
		G:       func(v any) monad.Monad { return Take(Repeat[any](v), 2) },
		Fn:      func(v any) any { return v.(int) + 1 },
		Gn:      func(v any) any { return v.(int) * 2 },
		Observe: observe,
	})
}

func TestProtocol_AndIsLazy(t *testing.T) {
	calls := 0
	m := Naturals().And(func(v any) monad.Monad {
		calls++
		return Pure(v)
	})
	if calls != 0 {
		t.Fatal("And evaluated f eagerly")
	}
	assertSlice(t, Cast[int](m).Take(3).ToSlice(), []int{0, 1, 2})
	if calls != 3 {
		t.Errorf("f called %d times, want 3", calls)
	}
}

func TestProtocol_AndJoinsForeignMonads(t *testing.T) {
	m := Of(1, 2, 3, 4).And(func(v any) monad.Monad {
		if v.(int)%2 == 0 {
			return maybe.Just(v)
		}
		return maybe.Nothing[int]()
	})
	assertSlice(t, Cast[int](m).ToSlice(), []int{2, 4})
}

func TestProtocol_AndRejectsUnknownKinds(t *testing.T) {
	m := Of(1).And(func(any) monad.Monad { return opaque{} })
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.IsCode(err, errors.ErrCodeTypeMismatch) {
			t.Errorf("expected TYPE_MISMATCH panic, got %v", err)
		}
	}()
	ToSlice(m.(Sequence[any]))
}

func TestCast(t *testing.T) {
	s := Of(1, 2)
	if c := Cast[int](s); !Equal(c, s) {
		t.Error("Cast to the same type should be identity")
	}
	erased := s.Fmap(monad.Identity)
	assertSlice(t, Cast[int](erased).ToSlice(), []int{1, 2})
	assertSlice(t, Cast[int](maybe.Just(5)).ToSlice(), []int{5})
}

func TestCast_BadElementPanics(t *testing.T) {
	bad := Cast[string](Of(1).Erase())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for int viewed as string")
		}
	}()
	bad.ToSlice()
}

type opaque struct{}

func (opaque) Pure(v any) monad.Monad { return opaque{} }
func (opaque) Empty() monad.Monad { return opaque{} }
func (opaque) Fmap(func(any) any) monad.Monad { return opaque{} }
func (opaque) And(func(any) monad.Monad) monad.Monad { return opaque{} }
