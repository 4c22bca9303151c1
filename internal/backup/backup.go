// Package backup implements the export/import surface: a single JSON
// payload of tasks, lists and settings that round-trips losslessly.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/twodo-app/twodo/internal/model"
)

type Payload struct {
	Tasks      []model.Task   `json:"tasks"`
	Lists      []model.List   `json:"lists"`
	Settings   model.Settings `json:"settings"`
	ExportedAt string         `json:"exportedAt"`
}

// Result is a parsed import. Each section is applied all-or-nothing:
// a present flag means the field existed in the file and parsed cleanly.
type Result struct {
	Tasks       []model.Task
	HasTasks    bool
	Lists       []model.List
	HasLists    bool
	Settings    model.Settings
	HasSettings bool
}

func Export(tasks []model.Task, lists []model.List, settings model.Settings, now time.Time) ([]byte, error) {
	payload := Payload{
		Tasks:      tasks,
		Lists:      lists,
		Settings:   settings,
		ExportedAt: now.UTC().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: marshal export: %w", err)
	}
	return append(raw, '\n'), nil
}

// ExportToFile writes the export payload to
// <dir>/twodo-backup-<unix-ms>.json via a temp file and rename.
func ExportToFile(dir string, tasks []model.Task, lists []model.List, settings model.Settings, now time.Time) (string, error) {
	raw, err := Export(tasks, lists, settings, now)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("backup: create export dir: %w", err)
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("twodo-backup-%d.json", now.UnixMilli()))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return "", fmt.Errorf("backup: write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("backup: finalize export: %w", err)
	}
	return path, nil
}

// Import parses a backup payload. Malformed JSON or a wrong-shaped
// field rejects the whole import; absent fields are simply skipped.
// Settings are merged over the given defaults so older exports pick up
// defaults for keys they predate, and unknown keys are ignored.
func Import(data []byte, defaults model.Settings) (Result, error) {
	var raw struct {
		Tasks    json.RawMessage `json:"tasks"`
		Lists    json.RawMessage `json:"lists"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{}, fmt.Errorf("backup: parse import: %w", err)
	}

	out := Result{}
	if len(raw.Tasks) > 0 && string(raw.Tasks) != "null" {
		if err := json.Unmarshal(raw.Tasks, &out.Tasks); err != nil {
			return Result{}, fmt.Errorf("backup: tasks field is not a task array: %w", err)
		}
		out.HasTasks = true
	}
	if len(raw.Lists) > 0 && string(raw.Lists) != "null" {
		if err := json.Unmarshal(raw.Lists, &out.Lists); err != nil {
			return Result{}, fmt.Errorf("backup: lists field is not a list array: %w", err)
		}
		out.HasLists = true
	}
	if len(raw.Settings) > 0 && string(raw.Settings) != "null" {
		merged := defaults
		if err := json.Unmarshal(raw.Settings, &merged); err != nil {
			return Result{}, fmt.Errorf("backup: settings field is not an object: %w", err)
		}
		out.Settings = merged
		out.HasSettings = true
	}
	return out, nil
}

// ImportFile reads and parses a backup file.
func ImportFile(path string, defaults model.Settings) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("backup: read import: %w", err)
	}
	return Import(raw, defaults)
}
