// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudeeprj-pks/SCT-CS-3/internal/api"
	"github.com/sudeeprj-pks/SCT-CS-3/internal/util"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password assessment API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand()
		},
	}
)

func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16VarP(&port, "port", "p", 3100, "Port to be used by the server")
	serveCmd.Flags().Int64Var(&cacheEntries, "cache-entries", 0, "Maximum number of assessments kept in the response cache. 0 uses the built-in default.")

	rootCmd.AddCommand(serveCmd)
}

func serveCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	scoring, err := scoringConfig()
	if err != nil {
		return err
	}

	return api.Serve(api.Config{
		Port:         fmt.Sprintf("%d", port),
		SelfTLS:      selfTLS,
		TLSCert:      tlsCert,
		TLSKey:       tlsKey,
		Debug:        verbose,
		CacheEntries: cacheEntries,
	}, scoring)
}
