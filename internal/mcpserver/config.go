package mcpserver

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/erraggy/casekit/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultStyle is used when a tool call names no style.
	DefaultStyle casing.Style

	// Limits.
	MaxValues     int
	MaxInlineSize int64

	// Conversion settings.
	Concurrency int
	Timeout     time.Duration

	// Rekey tool defaults.
	RekeyStrict bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultStyle:  envStyle("CASEKIT_DEFAULT_STYLE", casing.Camel),
		MaxValues:     envInt("CASEKIT_MAX_VALUES", 1000),
		MaxInlineSize: envInt64("CASEKIT_MAX_INLINE_SIZE", 10*1024*1024),
		Concurrency:   envInt("CASEKIT_CONCURRENCY", runtime.GOMAXPROCS(0)),
		Timeout:       envDuration("CASEKIT_TIMEOUT", 30*time.Second),
		RekeyStrict:   envBool("CASEKIT_REKEY_STRICT", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envStyle(key string, fallback casing.Style) casing.Style {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	style, err := casing.ParseStyle(v)
	if err != nil {
		slog.Warn("invalid style env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return style
}
