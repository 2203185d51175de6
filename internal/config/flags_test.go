package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "https://work.kg/api",
		"-request-timeout", "15s",
		"-d", "/tmp/admin.db",
		"-log-file", "/tmp/admin.log",
		"-log-level", "debug",
		"-refresh-interval", "45s",
		"-c", "/etc/admin.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://work.kg/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/admin.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/admin.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 45*time.Second, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, "/etc/admin.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/etc/admin.json"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/admin.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "later"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-x"})
	require.Error(t, err)
}
