// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the admin
// console. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the admin API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the durable client-side storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log output settings.
	Log Log `envPrefix:"LOG_"`

	// Dashboard holds the dashboard screen settings.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the admin API client.
type Adapter struct {
	// HTTPAddress is the backend base URL including the API prefix
	// (e.g. "http://localhost:8080/api"). A value without a scheme is
	// treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API call. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the durable storage settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local SQLite database that keeps the
// session token and cached profile.
type DB struct {
	// DSN is the SQLite file path. "memory" or ":memory:" selects a
	// non-persistent in-process store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds log output settings.
type Log struct {
	// File is the log file path. Relative paths are resolved next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Dashboard holds settings of the dashboard screen.
type Dashboard struct {
	// RefreshInterval reloads the dashboard in the background. Zero turns
	// automatic reloads off.
	// Env: DASHBOARD_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Default values applied before every other source.
const (
	DefaultHTTPAddress = "http://localhost:8080/api"
	DefaultDSN         = "work-kg-admin.db"
	DefaultLogFile     = "work-kg-admin.log"
	DefaultLogLevel    = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{File: DefaultLogFile, Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
