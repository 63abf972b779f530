package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	Take   int
	Params genParams
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen <" + strings.Join(generatorNames(), "|") + ">",
		Short: "Print a generated sequence",
		Long: `Print the elements of a built-in sequence.

Infinite generators (fib, squares, primes, naturals) are cut to --take
elements, defaulting to sequence.take from the configuration. "angles"
divides a full turn into --n angles and "range" walks --from to --to
inclusive by --step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Take, "take", 0, "number of elements for infinite generators")
	cmd.Flags().IntVar(&opts.Params.N, "n", 8, "number of angles for the angles generator")
	cmd.Flags().Float64Var(&opts.Params.From, "from", 0, "range start")
	cmd.Flags().Float64Var(&opts.Params.To, "to", 10, "range end (inclusive)")
	cmd.Flags().Float64Var(&opts.Params.Step, "step", 1, "range step")

	return cmd
}

func runGen(root *RootOptions, opts *GenOptions, name string, cmd *cobra.Command) error {
	log := root.log.WithComponent("gen")

	take := opts.Take
	if take == 0 {
		take = root.cfg.Sequence.Take
	}
	if err := validation.New().
		OneOf("generator", name, generatorNames()).
		Required("generator", name).
		Min("take", take, 0).
		Min("n", opts.Params.N, 1).
		NonZero("step", opts.Params.Step).
		Err(); err != nil {
		return err
	}

	s, err := buildGenerated(name, opts.Params, take)
	if err != nil {
		return err
	}
	s = traced(root, "gen", log, s)

	if err := writeSequence(cmd.OutOrStdout(), root, s); err != nil {
		return err
	}
	log.Info("sequence generated", logger.Fields("generator", name))
	return nil
}

// buildGenerated resolves a generator and bounds it when infinite.
func buildGenerated(name string, p genParams, take int) (seq.Sequence[any], error) {
	g, ok := generators[name]
	if !ok {
		return seq.Nil[any](), errors.NotFound("generator", name)
	}
	s := g.build(p)
	if g.infinite {
		s = s.Take(take)
	}
	return s, nil
}

// traced counts every pulled element for the running command and logs it
// at debug level.
func traced[T any](root *RootOptions, command string, log *logger.Logger, s seq.Sequence[T]) seq.Sequence[T] {
	debug := log.DebugEnabled()
	return s.Tap(func(v T) {
		root.telemetry.CountElement(root.ctx, command)
		if debug {
			log.Debug("element", logger.Fields(logger.FieldElement, v))
		}
	})
}

// writeSequence prints s as "[a,b,...]" capped by the configured show
// limit, or as a JSON array.
func writeSequence[T any](w io.Writer, root *RootOptions, s seq.Sequence[T]) error {
	if root.Format == "json" {
		out, err := json.Marshal(s.Take(root.cfg.Sequence.ShowLimit).ToSlice())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	_, err := fmt.Fprintln(w, seq.ShowN(s, root.cfg.Sequence.ShowLimit))
	return err
}
