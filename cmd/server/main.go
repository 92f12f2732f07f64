// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sudeeprj-pks/SCT-CS-3/internal/api"
)

// Environment-driven entry point for running the assessment API on its own,
// e.g. in a container. The pwdstrength binary's serve command does the same
// job driven by flags.
func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	scoring, err := cfg.ScoringConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading scoring configuration")
	}

	if err = api.Serve(cfg, scoring); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}
}
