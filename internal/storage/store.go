package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/twodo-app/twodo/internal/model"
)

// Document keys. Each is saved independently; a crash between two saves
// is healed by the normalization pass on next load.
const (
	KeyTasks    = "tasks"
	KeyLists    = "lists"
	KeySettings = "settings"
	KeyMeta     = "meta"
)

// MiniSize is the persisted preferred size of the mini window.
type MiniSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Meta carries the small bookkeeping values that are not user data:
// the rollover idempotency marker and the mini window size.
type Meta struct {
	LastRolloverDate string   `json:"lastRolloverDate"`
	MiniSize         MiniSize `json:"miniSize"`
}

func DefaultMeta() Meta {
	return Meta{MiniSize: MiniSize{Width: 440, Height: 620}}
}

// Store wraps a Repository with the fail-soft contract the UI relies
// on: loads fall back to the given default on any error, saves swallow
// errors, and both log a warning instead of propagating. In-memory
// state stays the source of truth for the session.
type Store struct {
	repo Repository
	log  *slog.Logger
}

func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{repo: repo, log: logger}
}

func (s *Store) LoadTasks(ctx context.Context, fallback []model.Task) []model.Task {
	var out []model.Task
	if !s.load(ctx, KeyTasks, &out) {
		return fallback
	}
	return out
}

func (s *Store) SaveTasks(ctx context.Context, tasks []model.Task) {
	s.save(ctx, KeyTasks, tasks)
}

func (s *Store) LoadLists(ctx context.Context, fallback []model.List) []model.List {
	var out []model.List
	if !s.load(ctx, KeyLists, &out) {
		return fallback
	}
	return out
}

func (s *Store) SaveLists(ctx context.Context, lists []model.List) {
	s.save(ctx, KeyLists, lists)
}

func (s *Store) LoadSettings(ctx context.Context, fallback model.Settings) model.Settings {
	// Unmarshal over the defaults so missing keys keep their fallback
	// values and unknown keys are ignored.
	out := fallback
	if !s.load(ctx, KeySettings, &out) {
		return fallback
	}
	return out
}

func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) {
	s.save(ctx, KeySettings, settings)
}

func (s *Store) LoadMeta(ctx context.Context, fallback Meta) Meta {
	out := fallback
	if !s.load(ctx, KeyMeta, &out) {
		return fallback
	}
	return out
}

func (s *Store) SaveMeta(ctx context.Context, meta Meta) {
	s.save(ctx, KeyMeta, meta)
}

func (s *Store) load(ctx context.Context, key string, into any) bool {
	raw, err := s.repo.LoadDocument(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("load failed, using defaults", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		s.log.Warn("parse failed, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("serialize failed, keeping previous value", "key", key, "err", err)
		return
	}
	if err := s.repo.SaveDocument(ctx, key, raw); err != nil {
		s.log.Warn("save failed, keeping previous value", "key", key, "err", err)
	}
}
