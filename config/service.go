package config

import (
	"fmt"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/validation"
)

// AppName names the config search paths and the environment prefix.
const AppName = "seqkit"

// Config is the seqkit tool configuration.
type Config struct {
	Name        string               `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string               `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config        `yaml:"logging" mapstructure:"logging"`
	Sequence    Sequence             `yaml:"sequence" mapstructure:"sequence"`
	Query       Query                `yaml:"query" mapstructure:"query"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// Sequence holds defaults for rendering and comparing sequences.
type Sequence struct {
	// ShowLimit caps how many elements are rendered.
	ShowLimit int `yaml:"show_limit" mapstructure:"show_limit" validate:"gte=1"`
	// EqualBudget bounds element comparisons between sequences.
	EqualBudget int `yaml:"equal_budget" mapstructure:"equal_budget" validate:"gte=1"`
	// Take is the default element count for infinite generators.
	Take int `yaml:"take" mapstructure:"take" validate:"gte=0"`
}

// Query holds defaults for JSON queries.
type Query struct {
	// Limit caps printed results; 0 means unlimited.
	Limit int `yaml:"limit" mapstructure:"limit" validate:"gte=0"`
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = AppName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Sequence.ShowLimit == 0 {
		c.Sequence.ShowLimit = seq.DefaultShowLimit
	}
	if c.Sequence.EqualBudget == 0 {
		c.Sequence.EqualBudget = seq.DefaultEqualBudget
	}
	if c.Sequence.Take == 0 {
		c.Sequence.Take = 10
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks struct tags and the logging section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
