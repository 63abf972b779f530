// Package cli implements the seqkit command tree.
package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

// RootOptions holds global flags and the state resolved from them.
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Format     string // "text" | "json"
	RunID      string

	cfg       *config.Config
	log       *logger.Logger
	runID     string
	start     time.Time
	ctx       context.Context
	telemetry *observability.Telemetry
	span      trace.Span
}

// newTelemetry is swapped in tests.
var newTelemetry = observability.New

// shutdownTimeout bounds the final telemetry flush.
const shutdownTimeout = 5 * time.Second

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the seqkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "seqkit",
		Short:         "Lazy sequences and JSON queries",
		Long:          "seqkit prints lazy, possibly infinite sequences and runs LINQ-style queries over JSON documents.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: search ./seqkit.yml, ./config.yml, user config dir)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level override (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format override (json|console)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.RunID, "run-id", "", "UUID tagging logs and spans of this run (default: generated)")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	for _, sub := range cmd.Commands() {
		opts.instrument(sub)
	}

	return cmd
}

// instrument makes sub close its telemetry span whether or not it fails.
func (o *RootOptions) instrument(sub *cobra.Command) {
	run := sub.RunE
	if run == nil {
		return
	}
	sub.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		o.finish(cmd, err)
		return err
	}
}

// setup validates global flags, loads configuration and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.start = time.Now()
	if err := validation.New().
		OneOf("format", o.Format, ValidFormats).
		OptionalUUID("run_id", o.RunID).
		Err(); err != nil {
		return err
	}

	// Bootstrap logger for config loading, replaced once config is known.
	boot := logger.Config{Level: o.LogLevel, Format: o.LogFormat}
	boot.ApplyDefaults()
	bootLog := logger.NewWithWriter(&boot, "seqkit", cmd.ErrOrStderr())

	loadOpts := []config.LoaderOption{config.WithLogger(bootLog.WithComponent("config"))}
	if o.ConfigFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(o.ConfigFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return err
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
	if err := cfg.Logging.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	o.runID = uuid.NewString()
	if o.RunID != "" {
		id, err := validation.ValidateUUID("run_id", o.RunID)
		if err != nil {
			return err
		}
		o.runID = id.String()
	}
	ctx := logger.ContextWithRunID(cmd.Context(), o.runID)

	o.log = logger.NewWithWriter(&cfg.Logging, cfg.Name, cmd.ErrOrStderr()).
		WithContext(ctx).
		WithFields(logger.Fields(logger.FieldCommand, cmd.Name()))
	logger.SetGlobalLogger(o.log)

	tel, err := newTelemetry(ctx, &cfg.Telemetry, observability.Resource{
		ServiceName:    cfg.Name,
		ServiceVersion: version.Get().Short(),
		Environment:    cfg.Environment,
	})
	if err != nil {
		return err
	}
	o.telemetry = tel
	ctx, o.span = tel.StartCommand(ctx, cmd.Name(), o.runID)
	o.ctx = ctx
	cmd.SetContext(ctx)

	o.log.Debug("command started", logger.Fields("environment", cfg.Environment, "config", o.ConfigFile))
	return nil
}

// finish closes the command span and flushes telemetry.
func (o *RootOptions) finish(cmd *cobra.Command, err error) {
	elapsed := time.Since(o.start)
	o.telemetry.EndCommand(o.ctx, o.span, cmd.Name(), elapsed, err)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(o.ctx), shutdownTimeout)
	defer cancel()
	if shutdownErr := o.telemetry.Shutdown(ctx); shutdownErr != nil {
		o.log.Warn("telemetry flush failed", logger.ErrorFields("shutdown", shutdownErr))
	}
	o.log.Debug("command finished", logger.DurationFields(cmd.Name(), elapsed))
}
