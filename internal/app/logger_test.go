package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerFormats(t *testing.T) {
	logger := NewLogger(&Config{AppEnv: "development", LogFormat: "pretty"})
	_, ok := logger.Handler().(*slog.TextHandler)
	require.True(t, ok, "pretty format renders text")

	logger = NewLogger(&Config{AppEnv: "development", LogFormat: "json"})
	_, ok = logger.Handler().(*slog.JSONHandler)
	require.True(t, ok, "json format opt-in")

	logger = NewLogger(&Config{AppEnv: "production", LogFormat: "pretty"})
	_, ok = logger.Handler().(*slog.JSONHandler)
	require.True(t, ok, "production always logs JSON")
}
