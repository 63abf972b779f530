// Package validation checks seqkit configuration and command input.
//
// Struct tag validation (go-playground/validator) is used for loaded
// configuration; the fluent Validator collects errors for flag values.
//
// # Struct Tag Validation
//
//	type Sequence struct {
//	    ShowLimit int `mapstructure:"show_limit" validate:"gte=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Min("take", take, 0).
//	    OneOf("generator", name, generators).
//	    Validate()
package validation
