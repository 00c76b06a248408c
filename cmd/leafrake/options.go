package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/katalvlaran/leafrake/config"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	LogLevel  string
	LogFormat string
}

func newRootOptions() *rootOptions {
	return &rootOptions{LogLevel: "info", LogFormat: "text"}
}

func (o *rootOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&o.LogFormat, "log-format", o.LogFormat, "Log format: text or json")
}

func (o *rootOptions) Validate() error {
	var errs error
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = multierr.Append(errs, fmt.Errorf("log-level must be debug, info, warn or error, got %q", o.LogLevel))
	}
	if o.LogFormat != "text" && o.LogFormat != "json" {
		errs = multierr.Append(errs, fmt.Errorf("log-format must be text or json, got %q", o.LogFormat))
	}

	return errs
}

// solveOptions are the flags of the solve subcommand.
type solveOptions struct {
	ConfigPath string
	Algorithm  string

	// override is the parsed Algorithm; nil keeps the config's choice.
	override *config.Algorithm
}

func (o *solveOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "Path to the HCL problem file")
	fs.StringVar(&o.Algorithm, "algorithm", o.Algorithm, "Override the solve algorithm: greedy or anneal")
}

func (o *solveOptions) Validate() error {
	var errs error
	if o.ConfigPath == "" {
		errs = multierr.Append(errs, errors.New("--config is required"))
	}
	o.override = nil
	if o.Algorithm != "" {
		alg, err := config.ParseAlgorithm(o.Algorithm)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			o.override = &alg
		}
	}

	return errs
}
