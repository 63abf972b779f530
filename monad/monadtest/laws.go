// Package monadtest checks the functor and monad laws for monad.Monad
// implementations.
package monadtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/monad"
)

// Observe extracts a comparable rendering of a monad value, typically its
// element list.
type Observe func(monad.Monad) any

// Laws bundles the inputs the checks share.
type Laws struct {
	// Unit is any value of the kind under test; its Pure and Empty are used.
	Unit monad.Monad
	// Samples are the monad values the laws are checked against.
	Samples []monad.Monad
	// Values are plain values fed to Pure for the left identity law.
	Values []any
	// F and G are Kleisli arrows of the kind under test.
	F, G func(any) monad.Monad
	// Fn and Gn are pure element functions for the functor laws.
	Fn, Gn func(any) any
	// Observe renders a monad for comparison.
	Observe Observe
}

// Check runs every law as a subtest.
func Check(t *testing.T, l Laws) {
	t.Helper()
	t.Run("functor identity", func(t *testing.T) {
		for _, m := range l.Samples {
			assertSame(t, l.Observe(m.Fmap(monad.Identity)), l.Observe(m))
		}
	})
	t.Run("functor composition", func(t *testing.T) {
		for _, m := range l.Samples {
			got := l.Observe(m.Fmap(monad.Compose(l.Fn, l.Gn)))
			want := l.Observe(m.Fmap(l.Fn).Fmap(l.Gn))
			assertSame(t, got, want)
		}
	})
	t.Run("left identity", func(t *testing.T) {
		for _, v := range l.Values {
			assertSame(t, l.Observe(l.Unit.Pure(v).And(l.F)), l.Observe(l.F(v)))
		}
	})
	t.Run("right identity", func(t *testing.T) {
		for _, m := range l.Samples {
			assertSame(t, l.Observe(m.And(m.Pure)), l.Observe(m))
		}
	})
	t.Run("associativity", func(t *testing.T) {
		for _, m := range l.Samples {
			got := l.Observe(m.And(l.F).And(l.G))
			want := l.Observe(m.And(func(v any) monad.Monad { return l.F(v).And(l.G) }))
			assertSame(t, got, want)
		}
	})
	t.Run("empty absorbs", func(t *testing.T) {
		e := l.Unit.Empty()
		assertSame(t, l.Observe(e.And(l.F)), l.Observe(e))
		assertSame(t, l.Observe(e.Fmap(l.Fn)), l.Observe(e))
	})
}

func assertSame(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("law violated (-want +got):\n%s", diff)
	}
}
