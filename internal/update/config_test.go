package update

import "testing"

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.RolloverIntervalSeconds != 60 {
		t.Fatalf("expected 60s rollover interval, got %d", cfg.RolloverIntervalSeconds)
	}
	if cfg.DBPath != "" || cfg.LogFile != "" || cfg.ExportDir != "" {
		t.Fatalf("expected empty paths by default, got %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TWODO_DB_PATH", "/tmp/twodo.db")
	t.Setenv("TWODO_LOG_FILE", "/tmp/twodo.log")
	t.Setenv("TWODO_EXPORT_DIR", "/tmp/exports")
	t.Setenv("TWODO_ROLLOVER_INTERVAL_SECONDS", "5")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/twodo.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.LogFile != "/tmp/twodo.log" {
		t.Fatalf("unexpected log file: %q", cfg.LogFile)
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Fatalf("unexpected export dir: %q", cfg.ExportDir)
	}
	if cfg.RolloverIntervalSeconds != 5 {
		t.Fatalf("unexpected rollover interval: %d", cfg.RolloverIntervalSeconds)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("TWODO_ROLLOVER_INTERVAL_SECONDS", "not-a-number")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.RolloverIntervalSeconds != 60 {
		t.Fatalf("expected default kept for invalid value, got %d", cfg.RolloverIntervalSeconds)
	}
}
