package jsonm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kbukum/seqkit/monad"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Key returns an Inside step selecting an object member. Non-objects and
// missing or null members yield the empty Value.
func Key(name string) func(any) monad.Monad {
	return func(x any) monad.Monad {
		obj, ok := x.(Object)
		if !ok {
			return Value{}
		}
		return Wrap(obj[name])
	}
}

// Index returns an Inside step selecting an array entry. Out of range
// indexes and non-arrays yield the empty Value.
func Index(i int) func(any) monad.Monad {
	return func(x any) monad.Monad {
		arr, ok := x.([]any)
		if !ok || i < 0 || i >= len(arr) {
			return Value{}
		}
		return Pure(arr[i])
	}
}

// Path returns an Inside step following dot-separated keys. Arrays met
// along the way are walked element by element; a segment written as
// name[n] selects entry n of the array under name instead.
func Path(path string) func(any) monad.Monad {
	var steps []func(any) monad.Monad
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if name, idx, ok := parseIndexed(seg); ok {
			steps = append(steps, keyIndex(name, idx))
			continue
		}
		steps = append(steps, Key(seg))
	}
	return func(x any) monad.Monad {
		var cur monad.Monad = Pure(x)
		for _, step := range steps {
			cur = cur.And(step)
		}
		return cur
	}
}

func keyIndex(name string, i int) func(any) monad.Monad {
	index := Index(i)
	return func(x any) monad.Monad {
		obj, ok := x.(Object)
		if !ok {
			return Value{}
		}
		return index(obj[name])
	}
}

func parseIndexed(seg string) (string, int, bool) {
	open := strings.IndexByte(seg, '[')
	if open <= 0 || !strings.HasSuffix(seg, "]") {
		return "", 0, false
	}
	idx, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil {
		return "", 0, false
	}
	return seg[:open], idx, true
}

// Children is an Inside step yielding the members of an object, ordered by
// key, or the entries of an array. Scalars have no children.
func Children(x any) monad.Monad {
	switch t := x.(type) {
	case Object:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = t[k]
		}
		return Array(out...)
	case []any:
		return Array(t...)
	default:
		return Value{}
	}
}

// Descendants is an Inside step yielding x and every value nested in it,
// depth first.
func Descendants(x any) monad.Monad {
	out := []any{x}
	for _, child := range From(Children(x)).items {
		out = append(out, From(Descendants(child)).items...)
	}
	return Array(out...)
}

// Pure wraps x as a single element without spreading arrays.
func Pure(x any) Value {
	return Value{items: []any{x}}
}

// Field returns a Select step reading an object member, or nil.
func Field(name string) func(any) any {
	return func(x any) any {
		if obj, ok := x.(Object); ok {
			return obj[name]
		}
		return nil
	}
}

// FieldEquals returns a Where predicate comparing the printed form of an
// object member with want. Decoded numbers compare by their source text.
func FieldEquals(name, want string) func(any) bool {
	get := Field(name)
	return func(x any) bool {
		v := get(x)
		return v != nil && fmt.Sprint(v) == want
	}
}

// HasField returns a Where predicate keeping objects with a non-null member.
func HasField(name string) func(any) bool {
	get := Field(name)
	return func(x any) bool { return get(x) != nil }
}
