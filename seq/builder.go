package seq

import "github.com/kbukum/seqkit/errors"

// Builder stages values and sequences for a single Build. Building a long
// sequence out of Cons or Snoc calls nests one iterator per element; a
// Builder instead captures a flat segment list walked by index.
//
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	front []segment[T] // prepended, most recent last
	back  []segment[T]
	built bool
}

// segment is either a run of staged values or a whole sequence.
type segment[T any] struct {
	values []T
	seq    Sequence[T]
	isSeq  bool
}

// NewBuilder creates an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Append stages values at the end.
func (b *Builder[T]) Append(values ...T) error {
	if b.built {
		return errors.AlreadyBuilt("append")
	}
	if len(values) > 0 {
		b.back = append(b.back, segment[T]{values: append([]T(nil), values...)})
	}
	return nil
}

// AppendSeq stages sequences at the end, in order. They are not iterated
// until the built sequence is.
func (b *Builder[T]) AppendSeq(seqs ...Sequence[T]) error {
	if b.built {
		return errors.AlreadyBuilt("append")
	}
	for _, s := range seqs {
		b.back = append(b.back, segment[T]{seq: s, isSeq: true})
	}
	return nil
}

// Prepend stages values at the front, keeping their relative order.
func (b *Builder[T]) Prepend(values ...T) error {
	if b.built {
		return errors.AlreadyBuilt("prepend")
	}
	if len(values) > 0 {
		b.front = append(b.front, segment[T]{values: append([]T(nil), values...)})
	}
	return nil
}

// PrependSeq stages sequences at the front, keeping their relative order.
func (b *Builder[T]) PrependSeq(seqs ...Sequence[T]) error {
	if b.built {
		return errors.AlreadyBuilt("prepend")
	}
	for i := len(seqs) - 1; i >= 0; i-- {
		b.front = append(b.front, segment[T]{seq: seqs[i], isSeq: true})
	}
	return nil
}

// Built reports whether Build has been called.
func (b *Builder[T]) Built() bool { return b.built }

// Build returns the staged segments as one sequence. The Builder cannot be
// used afterwards.
func (b *Builder[T]) Build() (Sequence[T], error) {
	if b.built {
		return Nil[T](), errors.AlreadyBuilt("build")
	}
	b.built = true

	segs := make([]segment[T], 0, len(b.front)+len(b.back))
	for i := len(b.front) - 1; i >= 0; i-- {
		segs = append(segs, b.front[i])
	}
	segs = append(segs, b.back...)
	b.front, b.back = nil, nil

	return FromFunc(func() Iterator[T] {
		return &builderIter[T]{segs: segs}
	}), nil
}

// MustBuild is Build for callers that own the Builder and know it is fresh.
func (b *Builder[T]) MustBuild() Sequence[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type builderIter[T any] struct {
	segs    []segment[T]
	seg     int
	pos     int
	current Iterator[T]
}

func (it *builderIter[T]) Next() (T, bool) {
	for it.seg < len(it.segs) {
		s := it.segs[it.seg]
		if !s.isSeq {
			if it.pos < len(s.values) {
				v := s.values[it.pos]
				it.pos++
				return v, true
			}
		} else {
			if it.current == nil {
				it.current = s.seq.Iterator()
			}
			if v, ok := it.current.Next(); ok {
				return v, true
			}
			it.current = nil
		}
		it.seg++
		it.pos = 0
	}
	var zero T
	return zero, false
}
