package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("POKEDEX_API_URL", "")
	t.Setenv("POKEDEX_CONFIG", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--launcher", "--log-level", "debug", "--api-url", "http://localhost:8080/api/v2/"}))

	opts := options{}
	opts.launcher, _ = cmd.Flags().GetBool("launcher")
	opts.logLevel, _ = cmd.Flags().GetString("log-level")
	opts.apiURL, _ = cmd.Flags().GetString("api-url")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.True(t, cfg.Launcher)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080/api/v2/", cfg.APIBaseURL)
}

func TestLoadConfigRejectsBadURL(t *testing.T) {
	t.Setenv("POKEDEX_API_URL", "")
	t.Setenv("POKEDEX_CONFIG", "")

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--api-url", "::nope"}))

	_, err := loadConfig(cmd, options{apiURL: "::nope"})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"pikachu"})
	assert.Error(t, cmd.Execute())
}
