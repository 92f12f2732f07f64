// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// root: scoring overrides
	minLength    int
	idealLength  int
	patternsFile string
	// assess
	interactive bool
	// assess
	jsonOut bool
	// audit
	inputFile string
	// audit
	outFile string
	// audit
	threads int
	// audit
	overwrite bool
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
	// serve
	cacheEntries int64
)
