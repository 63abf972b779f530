package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/jinq"
	"github.com/kbukum/seqkit/jsonm"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	Path   string
	Where  string
	Select string
	Limit  int
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query <file.json|->",
		Short: "Walk a JSON document and print matching elements",
		Long: `Walk a JSON document and print matching elements, one JSON value per line.

--path descends through object keys (a.b.c, with name[n] for array entries;
arrays along the way are flattened), --where keeps objects whose field
renders as the given value (field=value), and --select projects one field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "dotted path to descend into")
	cmd.Flags().StringVar(&opts.Where, "where", "", "filter as field=value")
	cmd.Flags().StringVar(&opts.Select, "select", "", "field to project")
	cmd.Flags().IntVar(&opts.Limit, "limit", -1, "maximum number of results (default query.limit, 0 = unlimited)")

	return cmd
}

func runQuery(root *RootOptions, opts *QueryOptions, file string, cmd *cobra.Command) error {
	log := root.log.WithComponent("query")

	limit := opts.Limit
	if limit < 0 {
		limit = root.cfg.Query.Limit
	}
	whereField, whereValue, hasWhere := strings.Cut(opts.Where, "=")
	if err := validation.New().
		Required("file", file).
		Custom(opts.Where == "" || (hasWhere && whereField != ""), "where", "must look like field=value").
		Err(); err != nil {
		return err
	}

	doc, err := readDocument(file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	q := jinq.From(doc)
	if opts.Path != "" {
		q = q.Inside(jsonm.Path(opts.Path))
	}
	if opts.Where != "" {
		q = q.Where(jsonm.FieldEquals(whereField, whereValue))
	}
	if opts.Select != "" {
		q = q.Select(jsonm.Field(opts.Select))
	}

	results := seq.FromSlice(jsonm.From(q.Result()).Elements())
	if limit > 0 {
		results = results.Take(limit)
	}

	count := 0
	w := cmd.OutOrStdout()
	for v := range traced(root, "query", log, results).All() {
		if err := writeJSONLine(w, v); err != nil {
			return err
		}
		count++
	}

	log.Info("query finished", logger.Fields("file", file, "path", opts.Path, logger.FieldCount, count))
	return nil
}

// readDocument decodes a file, or stdin when file is "-".
func readDocument(file string, stdin io.Reader) (jsonm.Value, error) {
	if file == "-" {
		return jsonm.Decode(stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return jsonm.Value{}, errors.NotFound("file", file).WithCause(err)
		}
		return jsonm.Value{}, errors.Internal(err)
	}
	defer f.Close()
	return jsonm.Decode(f)
}

func writeJSONLine(w io.Writer, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return errors.Internal(err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
