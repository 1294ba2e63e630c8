package config

import (
	"os"
	"strconv"
)

type Config struct {
	Seed           int64
	OutDir         string
	MetricsFile    string
	PreviewSamples int
	LogPretty      bool
}

func Load() *Config {
	return &Config{
		Seed:           getEnvInt64("AUSC_SEED", 0),
		OutDir:         getEnv("AUSC_OUT_DIR", "."),
		MetricsFile:    getEnv("AUSC_METRICS_FILE", ""),
		PreviewSamples: getEnvInt("AUSC_PREVIEW_SAMPLES", 2000),
		LogPretty:      getEnvBool("AUSC_LOG_PRETTY", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
