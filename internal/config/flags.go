package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a admin API base URL (e.g. http://localhost:8080/api)
//	-request-timeout per-request timeout (e.g. "30s"); 0 disables it
//	-d local storage DSN (SQLite file path or "memory")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-refresh-interval background dashboard reload period; 0 disables it
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var apiAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var logFile string
	var logLevel string
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("work-kg-admin", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "Admin API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Dashboard reload period (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Dashboard: Dashboard{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
