package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var keys = []string{"LOG_LEVEL", "NO_COLOR", "DAILY_SALT", "WORDS_ANSWERS_FILE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restoration
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	cfg, err := Load()
	req.NoError(err)
	req.Equal("info", cfg.LogLevel)
	req.False(cfg.NoColor)
	req.Equal("local_dev_salt", cfg.DailySalt)
	req.Empty(cfg.AnswersFile)
}

func TestLoadOverrides(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NO_COLOR", "true")
	t.Setenv("DAILY_SALT", "pepper")
	t.Setenv("WORDS_ANSWERS_FILE", "/tmp/answers.txt")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("debug", cfg.LogLevel)
	req.True(cfg.NoColor)
	req.Equal("pepper", cfg.DailySalt)
	req.Equal("/tmp/answers.txt", cfg.AnswersFile)
}

func TestLoadNoColorIsPresenceBased(t *testing.T) {
	tests := []struct {
		description string
		value       string
	}{
		{"Empty value still disables color", ""},
		{"Conventional 1", "1"},
		{"Arbitrary non-bool value", "please"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			req := require.New(t)
			clearEnv(t)
			t.Setenv("NO_COLOR", tc.value)

			cfg, err := Load()
			req.NoError(err)
			req.True(cfg.NoColor)
		})
	}
}
