package config

import (
	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/validation"
)

// Name is the configuration name used for file lookup and the env prefix.
const Name = "seqctl"

// Default OTLP HTTP collector address.
const DefaultOTLPEndpoint = "localhost:4318"

// Length limits for run.steps and run.group. The struct tags below repeat them.
const (
	MaxStepsLength = 4096
	MaxGroupLength = 64
)

// Config is the seqctl configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Run     RunConfig     `yaml:"run" mapstructure:"run"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// RunConfig holds defaults for `seqctl run`. Flags override them.
type RunConfig struct {
	// Steps is a pipeline such as "filter:even|transform:square|take:3".
	Steps string `yaml:"steps" mapstructure:"steps" validate:"max=4096"`
	// Group is an optional terminal grouping: "chunk:N", "sliding:N" or "equal".
	Group string `yaml:"group" mapstructure:"group" validate:"max=64"`
	// Seed feeds the random source of the sample step.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// MetricsConfig enables OTLP metric export.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
}

// TracingConfig enables OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure    bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio" mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Metrics.Enabled && c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = DefaultOTLPEndpoint
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = DefaultOTLPEndpoint
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return apperrors.InvalidConfig(err.Error()).WithCause(err)
	}
	return validation.Validate(c)
}

// Load reads the seqctl configuration, applies defaults and validates it.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(Name, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
