package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/operation"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Loading limits.
	FetchTimeout    time.Duration
	MaxInlineSize   int64
	MaxDocumentSize int64
	AllowPrivateIPs bool

	// Result paging.
	ResultLimit int
	MaxLimit    int

	// Flatten tool defaults.
	DefaultMethod string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASFLAT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASFLAT_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASFLAT_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASFLAT_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("OASFLAT_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASFLAT_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASFLAT_CACHE_SWEEP_INTERVAL", 60*time.Second),
		FetchTimeout:       envDuration("OASFLAT_FETCH_TIMEOUT", 30*time.Second),
		MaxInlineSize:      envSize("OASFLAT_MAX_INLINE_SIZE", 10*units.MiB),
		MaxDocumentSize:    envSize("OASFLAT_MAX_DOCUMENT_SIZE", 10*units.MiB),
		AllowPrivateIPs:    envBool("OASFLAT_ALLOW_PRIVATE_IPS", false),
		ResultLimit:        envInt("OASFLAT_RESULT_LIMIT", 500),
		MaxLimit:           envInt("OASFLAT_MAX_LIMIT", 5000),
		DefaultMethod:      envMethod("OASFLAT_DEFAULT_METHOD", httputil.MethodPost),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
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
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// envSize reads a byte size such as "512k", "10MB" or "1048576".
func envSize(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := units.RAMInBytes(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid size env var, using default", "key", key, "value", v, "default", units.BytesSize(float64(fallback))) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envMethod(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	m := operation.NormalizeMethod(v)
	if !httputil.IsMethod(m) {
		slog.Warn("invalid method env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return m
}
