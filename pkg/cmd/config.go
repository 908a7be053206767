// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no configuration file is given explicitly,
// provided it exists.
const DefaultConfigFile = "svfold.yaml"

// config holds the settings shared by all commands.  These are read from a
// configuration file (when present), and then overridden by any flags given on
// the command line.
type config struct {
	// Resource limits applied to each item evaluated.
	Limits limitsConfig `yaml:"limits"`
	// Radix used for printing results (empty means the natural radix).
	Radix string `yaml:"radix"`
	// Number of files processed concurrently (zero means use all CPUs).
	Jobs uint `yaml:"jobs"`
	// Highlight errors using ANSI escapes (when writing to a terminal)
	AnsiEscapes bool `yaml:"ansi-escapes"`
}

type limitsConfig struct {
	MaxCallDepth uint `yaml:"max-call-depth"`
	MaxExprDepth uint `yaml:"max-expr-depth"`
	MaxSteps     uint `yaml:"max-steps"`
	MaxWidth     uint `yaml:"max-width"`
}

func defaultConfig() config {
	var options = eval.DefaultOptions()
	//
	return config{
		Limits: limitsConfig{
			MaxCallDepth: options.MaxCallDepth,
			MaxExprDepth: options.MaxExprDepth,
			MaxSteps:     options.MaxSteps,
			MaxWidth:     options.MaxWidth,
		},
		AnsiEscapes: true,
	}
}

// Options returns the evaluation options determined by this configuration.
func (c *config) Options() eval.Options {
	return eval.Options{
		MaxCallDepth: c.Limits.MaxCallDepth,
		MaxExprDepth: c.Limits.MaxExprDepth,
		MaxSteps:     c.Limits.MaxSteps,
		MaxWidth:     c.Limits.MaxWidth,
	}
}

// Validate checks this configuration makes sense, reporting every problem
// found.
func (c *config) Validate() error {
	var errs []error
	//
	if c.Limits.MaxCallDepth == 0 {
		errs = append(errs, errors.New("max-call-depth must be positive"))
	}
	//
	if c.Limits.MaxExprDepth == 0 {
		errs = append(errs, errors.New("max-expr-depth must be positive"))
	}
	//
	if c.Limits.MaxSteps == 0 {
		errs = append(errs, errors.New("max-steps must be positive"))
	}
	//
	if c.Limits.MaxWidth == 0 {
		errs = append(errs, errors.New("max-width must be positive"))
	}
	//
	switch c.Radix {
	case "", "b", "o", "d", "h":
	default:
		errs = append(errs, fmt.Errorf("unknown radix \"%s\" (expected b, o, d or h)", c.Radix))
	}
	//
	return errors.Join(errs...)
}

// Read the configuration from a given file, where an empty filename means the
// default configuration file (which need not exist).  Settings missing from
// the file retain their defaults.
func readConfig(filename string) (config, error) {
	var explicit = filename != ""
	//
	if !explicit {
		filename = DefaultConfigFile
	}
	//
	file, err := os.Open(filename)
	//
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return defaultConfig(), nil
	} else if err != nil {
		return config{}, fmt.Errorf("config: open %s: %w", filename, err)
	}
	//
	defer file.Close()
	//
	return decodeConfig(filename, file)
}

func decodeConfig(filename string, reader io.Reader) (config, error) {
	var (
		cfg     = defaultConfig()
		decoder = yaml.NewDecoder(reader)
	)
	// Reject misspelt settings
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	//
	return cfg, nil
}

// Determine the configuration for a given command, by reading the selected
// configuration file and then applying any flags given explicitly.
func getConfig(cmd *cobra.Command) config {
	cfg, err := readConfig(getString(cmd, "config"))
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	overrideUint(cmd, "max-call-depth", &cfg.Limits.MaxCallDepth)
	overrideUint(cmd, "max-expr-depth", &cfg.Limits.MaxExprDepth)
	overrideUint(cmd, "max-steps", &cfg.Limits.MaxSteps)
	overrideUint(cmd, "max-width", &cfg.Limits.MaxWidth)
	overrideUint(cmd, "jobs", &cfg.Jobs)
	//
	if cmd.Flags().Changed("radix") {
		cfg.Radix = getString(cmd, "radix")
	}
	//
	if cmd.Flags().Changed("ansi-escapes") {
		cfg.AnsiEscapes = getFlag(cmd, "ansi-escapes")
	}
	//
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

func overrideUint(cmd *cobra.Command, flag string, field *uint) {
	if cmd.Flags().Changed(flag) {
		*field = getUint(cmd, flag)
	}
}
