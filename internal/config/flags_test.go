package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("client", flag.ContinueOnError)
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet()
	cfg, err := parseFlags(fs, []string{
		"-a", "http://api.local/users",
		"-request-timeout", "5s",
		"-d", "memory",
		"-locale", "en",
		"-log-file", "/tmp/x.log",
		"-log-level", "warn",
		"-config", "/etc/client.json",
		"login", "42",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://api.local/users", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "memory", cfg.Storage.Session.DSN)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "/tmp/x.log", cfg.App.LogFile)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/etc/client.json", cfg.JSONFilePath)

	// positional arguments are left for the command dispatcher
	assert.Equal(t, []string{"login", "42"}, fs.Args())
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	fs := newTestFlagSet()
	fs.SetOutput(discard{})

	_, err := parseFlags(fs, []string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
