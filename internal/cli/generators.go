package cli

import (
	"slices"

	"github.com/kbukum/seqkit/seq"
)

// genParams carries the generator flags.
type genParams struct {
	N    int
	From float64
	To   float64
	Step float64
}

// generator builds one named sequence.
type generator struct {
	// infinite generators are cut to --take elements.
	infinite bool
	build    func(p genParams) seq.Sequence[any]
}

var generators = map[string]generator{
	"fib":      {infinite: true, build: func(genParams) seq.Sequence[any] { return seq.Fibonacci().Erase() }},
	"squares":  {infinite: true, build: func(genParams) seq.Sequence[any] { return seq.Squares().Erase() }},
	"primes":   {infinite: true, build: func(genParams) seq.Sequence[any] { return seq.Primes().Erase() }},
	"naturals": {infinite: true, build: func(genParams) seq.Sequence[any] { return seq.Naturals().Erase() }},
	"angles":   {build: func(p genParams) seq.Sequence[any] { return seq.AngleDivision(p.N).Erase() }},
	"range": {build: func(p genParams) seq.Sequence[any] {
		return seq.RangeStep(p.From, p.To, p.Step).Erase()
	}},
}

// generatorNames returns the registered names in sorted order.
func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
