package update

import "context"

// UpdateInfo is the result of an update check.
type UpdateInfo struct {
	Version   string
	Available bool
}

// Platform is the seam to everything the host shell provides: window
// management for mini mode, system integration toggles, the completion
// sound, and the updater pipeline. The terminal build wires NoopPlatform
// and keeps every call a cheap no-op.
type Platform interface {
	SetAutoLaunch(enabled bool) error
	SetMinimizeToTray(enabled bool) error
	SetGlobalHotkey(enabled bool) error
	SetMiniMode(enabled bool) error
	SetMiniPinned(pinned bool) error
	SetMiniWindowSize(width, height int) error
	PlayCompletionSound() error
	Notify(title, body string) error
	SyncRemote(ctx context.Context, payload []byte) error
	CheckForUpdates(ctx context.Context) (UpdateInfo, error)
	DownloadUpdate(ctx context.Context, version string) error
	InstallUpdate(ctx context.Context) error
}

type NoopPlatform struct{}

func (NoopPlatform) SetAutoLaunch(bool) error { return nil }

func (NoopPlatform) SetMinimizeToTray(bool) error { return nil }

func (NoopPlatform) SetGlobalHotkey(bool) error { return nil }

func (NoopPlatform) SetMiniMode(bool) error { return nil }

func (NoopPlatform) SetMiniPinned(bool) error { return nil }

func (NoopPlatform) SetMiniWindowSize(int, int) error { return nil }

func (NoopPlatform) PlayCompletionSound() error { return nil }

func (NoopPlatform) Notify(string, string) error { return nil }

func (NoopPlatform) SyncRemote(context.Context, []byte) error { return nil }

func (NoopPlatform) CheckForUpdates(context.Context) (UpdateInfo, error) {
	return UpdateInfo{Available: false}, nil
}

func (NoopPlatform) DownloadUpdate(context.Context, string) error { return nil }

func (NoopPlatform) InstallUpdate(context.Context) error { return nil }
