// Package validation checks configuration structs and step arguments.
//
// Struct tag validation (go-playground/validator) is used for configuration
// loaded by package config; field names in messages follow the mapstructure
// keys of the struct.
//
//	type RunConfig struct {
//	    Steps string `mapstructure:"steps" validate:"max=1024"`
//	    Seed  uint64 `mapstructure:"seed"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic validation collects errors for textual arguments such as the
// "take:3" steps of seqctl:
//
//	v := validation.New()
//	n := v.Int("take", arg)
//	v.Min("take", n, 0)
//	err := v.Validate()
package validation
