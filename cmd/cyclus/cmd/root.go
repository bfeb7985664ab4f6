// SPDX-License-Identifier: MIT

// Package cmd provides the CLI commands for the cyclus driver.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	logLevel string
	cfgFile  string
)

// rootCmd is the base command when cyclus is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cyclus",
	Short: "Run a dynamic resource exchange simulation from a scenario file",
	Long: `cyclus loads an XML scenario describing a region/institution/facility
hierarchy and commodity priorities, then steps the exchange forward one
timestep at a time, logging each step's trades.`,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return applyConfigDefaults()
	},
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to a YAML file of default flag values (default: ./cyclus.yaml if present)")
}

// fileDefaults is the shape of an optional cyclus.yaml: flag defaults a
// caller would otherwise have to repeat on every invocation.
type fileDefaults struct {
	LogLevel string `yaml:"log_level"`
	Scenario string `yaml:"scenario"`
}

// applyConfigDefaults loads cfgFile (or ./cyclus.yaml if cfgFile was not
// set and the file exists) and uses its values to seed any flag the
// caller did not explicitly set on the command line. An absent default
// file is not an error; a malformed one is.
func applyConfigDefaults() error {
	path := cfgFile
	if path == "" {
		path = "cyclus.yaml"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if cfgFile == "" {
			return nil
		}
		return fmt.Errorf("cyclus: read config %s: %w", path, err)
	}

	var defaults fileDefaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return fmt.Errorf("cyclus: parse config %s: %w", path, err)
	}

	if !rootCmd.PersistentFlags().Changed("log-level") && defaults.LogLevel != "" {
		if err := rootCmd.PersistentFlags().Set("log-level", defaults.LogLevel); err != nil {
			return fmt.Errorf("cyclus: apply config default log-level: %w", err)
		}
	}
	if !runCmd.Flags().Changed("scenario") && defaults.Scenario != "" {
		if err := runCmd.Flags().Set("scenario", defaults.Scenario); err != nil {
			return fmt.Errorf("cyclus: apply config default scenario: %w", err)
		}
	}
	return nil
}
