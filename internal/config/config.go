package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServiceName string
	LogLevel    string

	OutputPath        string
	SheetName         string
	FailureReportPath string
	MetricsFile       string

	ProgressEnabled bool
	ExcerptChars    int

	ExportRetryMaxAttempts    int
	ExportRetryInitialBackoff time.Duration
	ExportRetryMaxBackoff     time.Duration
}

func Load() Config {
	return Config{
		ServiceName: mustEnv("SERVICE_NAME", "guide-extractor"),
		LogLevel:    mustEnv("LOG_LEVEL", "info"),

		OutputPath:        mustEnv("OUTPUT_PATH", "compilado_guias.xlsx"),
		SheetName:         mustEnv("SHEET_NAME", "Sheet1"),
		FailureReportPath: mustEnv("FAILURE_REPORT_PATH", ""),
		MetricsFile:       mustEnv("METRICS_FILE", ""),

		ProgressEnabled: mustEnvBool("PROGRESS_ENABLED", true),
		ExcerptChars:    mustEnvInt("EXCERPT_CHARS", 600),

		ExportRetryMaxAttempts:    mustEnvInt("EXPORT_RETRY_MAX_ATTEMPTS", 3),
		ExportRetryInitialBackoff: mustEnvDuration("EXPORT_RETRY_INITIAL_BACKOFF", 100*time.Millisecond),
		ExportRetryMaxBackoff:     mustEnvDuration("EXPORT_RETRY_MAX_BACKOFF", 400*time.Millisecond),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
