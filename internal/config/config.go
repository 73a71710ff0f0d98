// Package config reads runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// DBURL empty means the in-memory store; useful for local runs and CI.
	DBURL                   string
	DBDisablePreparedBinary bool

	CacheEnabled bool
	CacheTTL     time.Duration

	CORSAllowedOrigins []string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	AuditLogEnabled   bool
	AuditLogEndpoint  string
	AuditLogToken     string
	AuditLogTimeout   time.Duration
	AuditLogQueueSize int

	LogLevel logging.Level
}

func Load() (Config, error) {
	var env envReader

	appEnv, err := parseAppEnv(env.str("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	serviceName := env.str("SERVICE_NAME", "cricket-scorecard")
	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    serviceName,
		ServiceVersion: env.str("SERVICE_VERSION", "dev"),

		HTTPAddr:     env.str("HTTP_ADDR", ":8080"),
		ReadTimeout:  env.duration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: env.duration("HTTP_WRITE_TIMEOUT", 30*time.Second),

		DBURL:                   strings.TrimSpace(env.str("DB_URL", "")),
		DBDisablePreparedBinary: env.bool("DB_DISABLE_PREPARED_BINARY", false),

		CacheEnabled: env.bool("CACHE_ENABLED", true),
		CacheTTL:     env.duration("CACHE_TTL", 30*time.Second),

		CORSAllowedOrigins: splitCSV(env.str("CORS_ALLOWED_ORIGINS", "*")),

		PprofEnabled: env.bool("PPROF_ENABLED", false),
		PprofAddr:    env.str("PPROF_ADDR", ":6060"),

		UptraceEnabled:     env.bool("UPTRACE_ENABLED", false),
		UptraceDSN:         strings.TrimSpace(env.str("UPTRACE_DSN", "")),
		UptraceLogsEnabled: env.bool("UPTRACE_LOGS_ENABLED", true),

		PyroscopeEnabled:           env.bool("PYROSCOPE_ENABLED", false),
		PyroscopeServerAddress:     strings.TrimSpace(env.str("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAppName:           env.str("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:         env.str("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     env.str("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: env.str("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        env.duration("PYROSCOPE_UPLOAD_RATE", 15*time.Second),

		AuditLogEnabled:   env.bool("AUDITLOG_ENABLED", false),
		AuditLogEndpoint:  strings.TrimSpace(env.str("AUDITLOG_ENDPOINT", "")),
		AuditLogToken:     env.str("AUDITLOG_TOKEN", ""),
		AuditLogTimeout:   env.duration("AUDITLOG_TIMEOUT", 5*time.Second),
		AuditLogQueueSize: env.int("AUDITLOG_QUEUE_SIZE", 256),

		LogLevel: parseLogLevel(env.str("LOG_LEVEL", "info")),
	}
	if env.err != nil {
		return Config{}, env.err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.CacheEnabled && c.CacheTTL <= 0:
		return fmt.Errorf("CACHE_TTL must be > 0 when CACHE_ENABLED=true")
	case c.UptraceEnabled && c.UptraceDSN == "":
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	case c.PyroscopeEnabled && c.PyroscopeServerAddress == "":
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	case c.AuditLogEnabled && c.AuditLogEndpoint == "":
		return fmt.Errorf("AUDITLOG_ENDPOINT is required when AUDITLOG_ENABLED=true")
	}
	return nil
}

// SlogLevel maps the zap level onto slog for the process-edge logger.
func (c Config) SlogLevel() slog.Level {
	switch {
	case c.LogLevel <= logging.LevelDebug:
		return slog.LevelDebug
	case c.LogLevel == logging.LevelInfo:
		return slog.LevelInfo
	case c.LogLevel == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev, "development", "local":
		return EnvDev, nil
	case EnvStaging, "stage":
		return EnvStaging, nil
	case EnvProd, "production":
		return EnvProd, nil
	default:
		return "", fmt.Errorf("unknown APP_ENV %q", v)
	}
}

// envReader reads typed environment variables and remembers the first
// parse failure, so Load reads the whole environment before reporting.
type envReader struct {
	err error
}

func (r *envReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
	}
}

func (r *envReader) str(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func (r *envReader) bool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) int(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
