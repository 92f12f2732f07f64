// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdstrength [COMMAND] [OPTIONS]",
		Short: "Estimate how strong a password is",
		Long: "Estimate the strength of a password with heuristic scoring: length, character " +
			"class diversity, entropy, and detection of common weak patterns. Assessment is " +
			"advisory and fully local; passwords are never stored or sent anywhere.",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	rootCmd.PersistentFlags().IntVar(&minLength, "min-length", 0, "Override the minimum acceptable password length")
	rootCmd.PersistentFlags().IntVar(&idealLength, "ideal-length", 0, "Override the length at which length scoring reaches full marks")
	rootCmd.PersistentFlags().StringVar(&patternsFile, "patterns-file", "", "Replace the built-in weak pattern list with one read from a file, one pattern per line")
}

func Execute() error {
	return rootCmd.Execute()
}

// scoringConfig merges the persistent scoring flags into the defaults.
// Invalid combinations fail here, before any command body runs.
func scoringConfig() (strength.Config, error) {
	cfg := strength.DefaultConfig()

	if minLength > 0 {
		cfg.MinLength = minLength
	}
	if idealLength > 0 {
		cfg.IdealLength = idealLength
	}

	if patternsFile != "" {
		file, err := os.Open(patternsFile)
		if err != nil {
			return cfg, err
		}

		defer func(file *os.File) {
			if err = file.Close(); err != nil {
				log.Error().Err(err).Msg("error closing patterns file")
			}
		}(file)

		patterns, err := strength.LoadPatterns(file)
		if err != nil {
			return cfg, fmt.Errorf("error reading patterns file %s: %w", patternsFile, err)
		}
		cfg.CommonPatterns = patterns
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid scoring configuration: %w", err)
	}

	return cfg, nil
}
