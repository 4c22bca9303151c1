package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/storage"
	"github.com/twodo-app/twodo/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "twodo: open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, closeStore, err := openStore(cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "twodo: open database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	m := update.NewModelWithConfig(store, update.NoopPlatform{}, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "twodo failed: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, func() { _ = f.Close() }, nil
}

func openStore(path string, logger *slog.Logger) (*storage.Store, func(), error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "twodo", "twodo.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.MigrateUp(repo.DB()); err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	store := storage.NewStore(repo, logger)
	return store, func() { _ = repo.Close() }, nil
}
