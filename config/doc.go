// Package config loads seqctl configuration.
//
// Values come from a YAML file (seqctl.yml by default, searched in the usual
// project locations), an optional .env file and SEQCTL_ prefixed environment
// variables, in increasing order of precedence. Nested keys map to
// underscore-separated variables, e.g. SEQCTL_RUN_STEPS or
// SEQCTL_METRICS_ENDPOINT.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("seqctl.yml"))
//
// LoadConfig is the lower-level form that fills any mapstructure-tagged
// struct without applying defaults or validation.
package config
