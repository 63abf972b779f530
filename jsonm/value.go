// Package jsonm wraps decoded JSON trees in the monad protocol so they can
// be walked with jinq.
//
// The elements of a Value are the entries of a wrapped array, or the single
// wrapped scalar or object. JSON null and missing keys are the empty Value,
// which makes optional fields disappear from a query instead of failing it.
//
//	doc, _ := jsonm.Parse(data)
//	names := jinq.From(doc).
//	    Inside(jsonm.Path("company.employees")).
//	    Where(jsonm.FieldEquals("team", "core")).
//	    Select(jsonm.Field("name")).
//	    Result()
package jsonm

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/monad"
)

// Value is a JSON monad value.
type Value struct {
	items []any
	array bool
}

// Wrap views a decoded JSON value as a Value. Arrays contribute their
// entries, nil contributes nothing, anything else is a single element.
func Wrap(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case []any:
		return Value{items: t, array: true}
	case Value:
		return t
	default:
		return Value{items: []any{v}}
	}
}

// Array creates an array Value of the given elements.
func Array(items ...any) Value {
	return Value{items: items, array: true}
}

// Parse decodes a JSON document.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one JSON document from r. Numbers are kept as json.Number so
// large integers keep their exact printed form.
func Decode(r io.Reader) (Value, error) {
	var tree any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return Value{}, errors.InvalidJSON(err)
	}
	return Wrap(tree), nil
}

// Elements returns the elements of v.
func (v Value) Elements() []any { return v.items }

// Len returns the number of elements.
func (v Value) Len() int { return len(v.items) }

// IsEmpty reports whether v has no elements.
func (v Value) IsEmpty() bool { return len(v.items) == 0 }

// IsArray reports whether v is shaped as a JSON array.
func (v Value) IsArray() bool { return v.array }

// Tree returns v as a plain decoded JSON value: an []any for arrays, the
// element itself for a single value, nil for the empty Value.
func (v Value) Tree() any {
	if v.array {
		if v.items == nil {
			return []any{}
		}
		return v.items
	}
	if len(v.items) == 0 {
		return nil
	}
	return v.items[0]
}

// MarshalJSON encodes Tree.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Tree())
}

// String renders v as compact JSON.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<invalid json: " + err.Error() + ">"
	}
	return string(data)
}

// Get walks a dotted path from every element.
func (v Value) Get(path string) Value {
	return From(v.And(Path(path)))
}

// --- monad protocol ---

// Pure returns a single-element Value holding x as is.
func (v Value) Pure(x any) monad.Monad { return Value{items: []any{x}} }

// Empty returns the empty Value.
func (v Value) Empty() monad.Monad { return Value{} }

// Fmap applies f to every element, keeping the shape.
func (v Value) Fmap(f func(any) any) monad.Monad {
	out := make([]any, len(v.items))
	for i, x := range v.items {
		out[i] = f(x)
	}
	return Value{items: out, array: v.array}
}

// And binds every element through f. Binding a single value returns the
// result of f; binding an array concatenates the results into an array.
func (v Value) And(f func(any) monad.Monad) monad.Monad {
	if !v.array {
		if len(v.items) == 0 {
			return Value{}
		}
		return From(f(v.items[0]))
	}
	out := make([]any, 0, len(v.items))
	for _, x := range v.items {
		out = append(out, From(f(x)).items...)
	}
	return Value{items: out, array: true}
}

// From views a protocol value as a Value. Enumerable monads contribute
// their elements; anything else panics with a TYPE_MISMATCH AppError.
func From(m monad.Monad) Value {
	switch t := m.(type) {
	case Value:
		return t
	case monad.Enumerable:
		els := t.Elements()
		if len(els) == 1 {
			return Value{items: els}
		}
		return Value{items: els, array: true}
	default:
		panic(errors.TypeMismatch("jsonm.Value or monad.Enumerable", m))
	}
}
