package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the admin API client.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the per-call timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string, or "memory".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLog contains log output settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientDashboard contains dashboard screen settings.
type ClientDashboard struct {
	// RefreshInterval is the background reload period; zero disables it.
	RefreshInterval time.Duration
}

// ClientConfig is the runtime configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter   ClientAdapter
	Storage   ClientStorage
	Log       ClientLog
	Dashboard ClientDashboard
}

// GetClientConfig builds and validates the client config from the process
// arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Dashboard: ClientDashboard{
			RefreshInterval: cfg.Dashboard.RefreshInterval,
		},
	}
}
