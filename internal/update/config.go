package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath                  string
	LogFile                 string
	ExportDir               string
	RolloverIntervalSeconds int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		RolloverIntervalSeconds: 60,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TWODO_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TWODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TWODO_EXPORT_DIR"); ok {
		cfg.ExportDir = v
	}
	if v, ok := getEnvInt("TWODO_ROLLOVER_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.RolloverIntervalSeconds = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
