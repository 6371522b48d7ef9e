// Package cmd implements the run, check, and fmt subcommands for working
// with markup documents.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file (without extension).
	ConfigIdentifier = "config"
)
