package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/backup"
	"github.com/twodo-app/twodo/internal/model"
)

type settingsRow struct {
	key   string
	label string
	get   func(model.Settings) bool
	set   func(*model.Settings, bool)
}

var settingsRows = []settingsRow{
	{"highContrast", "高对比度", func(s model.Settings) bool { return s.HighContrast }, func(s *model.Settings, v bool) { s.HighContrast = v }},
	{"fontSmoothing", "字体平滑", func(s model.Settings) bool { return s.FontSmoothing }, func(s *model.Settings, v bool) { s.FontSmoothing = v }},
	{"autoLaunch", "开机自启动", func(s model.Settings) bool { return s.AutoLaunch }, func(s *model.Settings, v bool) { s.AutoLaunch = v }},
	{"minimizeToTray", "最小化到托盘", func(s model.Settings) bool { return s.MinimizeToTray }, func(s *model.Settings, v bool) { s.MinimizeToTray = v }},
	{"globalHotkey", "全局快捷键", func(s model.Settings) bool { return s.GlobalHotkey }, func(s *model.Settings, v bool) { s.GlobalHotkey = v }},
	{"nativeNotifications", "系统通知", func(s model.Settings) bool { return s.NativeNotifications }, func(s *model.Settings, v bool) { s.NativeNotifications = v }},
	{"miniMode", "迷你模式", func(s model.Settings) bool { return s.MiniMode }, func(s *model.Settings, v bool) { s.MiniMode = v }},
	{"autoRollover", "自动顺延", func(s model.Settings) bool { return s.AutoRollover }, func(s *model.Settings, v bool) { s.AutoRollover = v }},
	{"completionSound", "完成音效", func(s model.Settings) bool { return s.CompletionSound }, func(s *model.Settings, v bool) { s.CompletionSound = v }},
	{"quickAddHotkey", "快速添加快捷键", func(s model.Settings) bool { return s.QuickAddHotkey }, func(s *model.Settings, v bool) { s.QuickAddHotkey = v }},
	{"searchHotkey", "搜索快捷键", func(s model.Settings) bool { return s.SearchHotkey }, func(s *model.Settings, v bool) { s.SearchHotkey = v }},
	{"filterOverdueHotkey", "逾期过滤快捷键", func(s model.Settings) bool { return s.FilterOverdueHotkey }, func(s *model.Settings, v bool) { s.FilterOverdueHotkey = v }},
	{"compactMode", "紧凑模式", func(s model.Settings) bool { return s.CompactMode }, func(s *model.Settings, v bool) { s.CompactMode = v }},
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.SettingsCursor > 0 {
			m.SettingsCursor--
		}
	case "down", "j":
		if m.SettingsCursor < len(settingsRows)-1 {
			m.SettingsCursor++
		}
	case "enter", " ":
		return m, m.toggleSetting(m.SettingsCursor)
	case "e":
		return m, m.exportCmd()
	case "i":
		m.Importing = true
		m.importInput.SetValue("")
		m.importInput.Focus()
	case "u":
		if m.Updater.Phase != UpdaterChecking && m.Updater.Phase != UpdaterDownloading {
			m.Updater = UpdaterState{Phase: UpdaterChecking}
			return m, tea.Batch(m.checkSpinner.Tick, checkForUpdatesCmd(m.platform))
		}
	case "d":
		if m.Updater.Phase == UpdaterAvailable {
			m.Updater.Phase = UpdaterDownloading
			m.Updater.Progress = 0
			return m, downloadUpdateCmd(m.platform, m.Updater.Version)
		}
	case "U":
		if m.Updater.Phase == UpdaterDownloaded {
			return m, installUpdateCmd(m.platform)
		}
	}
	return m, nil
}

func (m *Model) toggleSetting(index int) tea.Cmd {
	if index < 0 || index >= len(settingsRows) {
		return nil
	}
	row := settingsRows[index]
	next := !row.get(m.Settings)
	row.set(&m.Settings, next)
	m.applySettingSideEffect(row.key, next)
	state := "off"
	if next {
		state = "on"
	}
	m.Status = StatusBar{Text: row.label + ": " + state, IsError: false}
	return m.persistSettings()
}

// applySettingSideEffect forwards toggles that control host behavior to
// the platform layer. Failures are swallowed; the stored flag is the
// source of truth and the host re-applies it on next launch.
func (m *Model) applySettingSideEffect(key string, value bool) {
	switch key {
	case "autoLaunch":
		_ = m.platform.SetAutoLaunch(value)
	case "minimizeToTray":
		_ = m.platform.SetMinimizeToTray(value)
	case "globalHotkey":
		_ = m.platform.SetGlobalHotkey(value)
	case "miniMode":
		_ = m.platform.SetMiniMode(value)
	}
}

func (m Model) exportCmd() tea.Cmd {
	dir := m.exportDir
	tasks := append([]model.Task(nil), m.Tasks...)
	lists := append([]model.List(nil), m.Lists...)
	settings := m.Settings
	now := m.now()
	return func() tea.Msg {
		path, err := backup.ExportToFile(dir, tasks, lists, settings, now)
		return ExportedMsg{Path: path, Err: err}
	}
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Importing = false
		m.importInput.Blur()
		return m, nil
	case "enter":
		path := m.importInput.Value()
		m.Importing = false
		m.importInput.SetValue("")
		m.importInput.Blur()
		return m.applyImport(path)
	}
	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

// applyImport replaces each section present in the backup file and
// leaves absent sections untouched. A malformed file changes nothing.
func (m Model) applyImport(path string) (Model, tea.Cmd) {
	res, err := backup.ImportFile(path, model.DefaultSettings())
	if err != nil {
		m.Status = StatusBar{Text: "import failed: " + err.Error(), IsError: true}
		return m, nil
	}
	if res.HasTasks {
		m.Tasks = res.Tasks
	}
	if res.HasLists {
		m.Lists = res.Lists
	}
	if res.HasSettings {
		m.Settings = res.Settings
	}
	m.Tasks, m.Lists, _ = model.Normalize(m.Tasks, m.Lists)
	m.Cursor = 0
	m.ensureCursor()
	m.Status = StatusBar{Text: "imported " + path, IsError: false}
	return m, tea.Batch(m.persistTasks(), m.persistLists(), m.persistSettings())
}
