package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type UpdaterPhase string

const (
	UpdaterIdle        UpdaterPhase = "idle"
	UpdaterChecking    UpdaterPhase = "checking"
	UpdaterAvailable   UpdaterPhase = "available"
	UpdaterNone        UpdaterPhase = "none"
	UpdaterDownloading UpdaterPhase = "downloading"
	UpdaterDownloaded  UpdaterPhase = "downloaded"
	UpdaterError       UpdaterPhase = "error"
)

type UpdaterState struct {
	Phase    UpdaterPhase
	Version  string
	Progress float64
	Err      string
}

type UpdateCheckedMsg struct {
	Info UpdateInfo
	Err  error
}

type UpdateDownloadedMsg struct {
	Err error
}

type UpdateInstalledMsg struct {
	Err error
}

func checkForUpdatesCmd(p Platform) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := p.CheckForUpdates(ctx)
		return UpdateCheckedMsg{Info: info, Err: err}
	}
}

func downloadUpdateCmd(p Platform, version string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		return UpdateDownloadedMsg{Err: p.DownloadUpdate(ctx, version)}
	}
}

func installUpdateCmd(p Platform) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return UpdateInstalledMsg{Err: p.InstallUpdate(ctx)}
	}
}

func (m Model) handleUpdaterMsg(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch typed := msg.(type) {
	case UpdateCheckedMsg:
		if typed.Err != nil {
			m.Updater = UpdaterState{Phase: UpdaterError, Err: typed.Err.Error()}
			m.Status = StatusBar{Text: "update check failed: " + typed.Err.Error(), IsError: true}
			return m, nil, true
		}
		if typed.Info.Available {
			m.Updater = UpdaterState{Phase: UpdaterAvailable, Version: typed.Info.Version}
			m.Status = StatusBar{Text: "update available: " + typed.Info.Version, IsError: false}
		} else {
			m.Updater = UpdaterState{Phase: UpdaterNone}
			m.Status = StatusBar{Text: "already up to date", IsError: false}
		}
		return m, nil, true
	case UpdateDownloadedMsg:
		if typed.Err != nil {
			m.Updater = UpdaterState{Phase: UpdaterError, Err: typed.Err.Error()}
			m.Status = StatusBar{Text: "download failed: " + typed.Err.Error(), IsError: true}
			return m, nil, true
		}
		m.Updater.Phase = UpdaterDownloaded
		m.Updater.Progress = 1
		m.Status = StatusBar{Text: "update downloaded: " + m.Updater.Version, IsError: false}
		return m, nil, true
	case UpdateInstalledMsg:
		if typed.Err != nil {
			m.Updater = UpdaterState{Phase: UpdaterError, Err: typed.Err.Error()}
			m.Status = StatusBar{Text: "install failed: " + typed.Err.Error(), IsError: true}
			return m, nil, true
		}
		m.Updater = UpdaterState{Phase: UpdaterIdle}
		m.Status = StatusBar{Text: "update installed, restart to apply", IsError: false}
		return m, nil, true
	}
	return m, nil, false
}
