package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
)

// EqualOptions holds flags for the equal command.
type EqualOptions struct {
	GenOptions
	Budget int
}

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EqualOptions{}

	cmd := &cobra.Command{
		Use:   "equal <generator> <generator>",
		Short: "Compare two generated sequences element by element",
		Long: `Compare two generated sequences element by element.

At most --budget element pairs are compared (default sequence.equal_budget);
sequences still agreeing when the budget runs out are reported as different.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEqual(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Take, "take", 0, "number of elements for infinite generators")
	cmd.Flags().IntVar(&opts.Params.N, "n", 8, "number of angles for the angles generator")
	cmd.Flags().Float64Var(&opts.Params.From, "from", 0, "range start")
	cmd.Flags().Float64Var(&opts.Params.To, "to", 10, "range end (inclusive)")
	cmd.Flags().Float64Var(&opts.Params.Step, "step", 1, "range step")
	cmd.Flags().IntVar(&opts.Budget, "budget", 0, "maximum number of element pairs to compare")

	return cmd
}

func runEqual(root *RootOptions, opts *EqualOptions, a, b string, cmd *cobra.Command) error {
	log := root.log.WithComponent("equal")

	take, budget := opts.Take, opts.Budget
	if take == 0 {
		take = root.cfg.Sequence.Take
	}
	if budget == 0 {
		budget = root.cfg.Sequence.EqualBudget
	}
	names := generatorNames()
	if err := validation.New().
		OneOf("left", a, names).
		OneOf("right", b, names).
		Min("take", take, 0).
		Min("budget", budget, 1).
		NonZero("step", opts.Params.Step).
		Err(); err != nil {
		return err
	}

	left, err := buildGenerated(a, opts.Params, take)
	if err != nil {
		return err
	}
	right, err := buildGenerated(b, opts.Params, take)
	if err != nil {
		return err
	}

	same := seq.EqualBudget(traced(root, "equal", log, left), traced(root, "equal", log, right), budget)
	log.Info("sequences compared", logger.Fields("left", a, "right", b, "budget", budget, "equal", same))

	verdict := "different"
	if same {
		verdict = "equal"
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)
	return err
}
