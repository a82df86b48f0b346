// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied by [GetStructuredConfig] before any source is read.
const (
	DefaultPreset         = "regional"
	DefaultVersion        = "dev"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 8 << 20
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for the
// clash-augmenter binaries. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds augmenter settings: which preset to merge, how to merge
	// its groups, where extra presets live, and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and limits for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for talking to a remote augment server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// IO holds input/output settings of the command-line tool.
	IO IO `envPrefix:"IO_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the augmenter's own settings.
type App struct {
	// Version is the version string of the running application. Exposed via
	// the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Profile is the profile name used to label diagnostics when the caller
	// does not provide one.
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`

	// Preset is the name of the preset merged when a call does not select
	// one explicitly.
	// Env: APP_PRESET
	Preset string `env:"PRESET"`

	// GroupMerge, when set to "append" or "prepend", overrides the merge
	// direction of every preset.
	// Env: APP_GROUP_MERGE
	GroupMerge string `env:"GROUP_MERGE"`

	// PresetsFile is an optional YAML or JSON file with extra presets.
	// Env: APP_PRESETS_FILE
	PresetsFile string `env:"PRESETS_FILE"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of a configuration document accepted in a
	// request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Adapter holds settings for the outbound client used by the command-line
// tool to delegate augmentation to a running server.
type Adapter struct {
	// HTTPAddress is the base address of the remote augment server. When
	// empty the command-line tool augments locally.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IO holds command-line input/output settings.
type IO struct {
	// Input is the path of the document to augment; "-" or empty is stdin.
	// Env: IO_INPUT
	Input string `env:"INPUT"`

	// Output is the path the augmented document is written to; "-" or
	// empty is stdout.
	// Env: IO_OUTPUT
	Output string `env:"OUTPUT"`

	// Format forces the document format ("yaml" or "json") instead of
	// guessing it from file extensions.
	// Env: IO_FORMAT
	Format string `env:"FORMAT"`

	// Clipboard copies the augmented document to the system clipboard in
	// addition to writing it to Output.
	// Env: IO_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
			Preset:  DefaultPreset,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
