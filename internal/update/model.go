package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/twodo-app/twodo/internal/dateutil"
	"github.com/twodo-app/twodo/internal/derive"
	"github.com/twodo-app/twodo/internal/dragdrop"
	"github.com/twodo-app/twodo/internal/model"
	"github.com/twodo-app/twodo/internal/storage"
)

type View string

const (
	ViewList     View = "List"
	ViewKanban   View = "Kanban"
	ViewCalendar View = "Calendar"
	ViewMini     View = "Mini"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	List     string
	Kanban   string
	Calendar string
	Mini     string
	Settings string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// DetailState drives the task detail modal. The title field is edited
// through a textinput, the description through a textarea with a
// glamour-rendered preview when not editing.
type DetailState struct {
	Active      bool
	TaskID      string
	EditingDesc bool
}

type DayModalState struct {
	Active bool
	ISO    string
	Adding bool
	Cursor int
}

type Model struct {
	CurrentView    View
	Tasks          []model.Task
	Lists          []model.List
	Settings       model.Settings
	Meta           storage.Meta
	SelectedListID string // empty selects the date-scoped today projection
	IncludeOverdue bool
	Cursor         int
	SelectedTaskID string
	KanbanColumn   model.Status
	KanbanCursor   int
	CalendarMonth  time.Time
	CalendarCursor int
	DayModal       DayModalState
	Detail         DetailState
	MiniPinned     bool
	MiniAdding     bool
	PulseTaskID    string
	QuickAdding    bool
	QuickAddStatus model.Status // set by the kanban column add, empty means todo
	AddingList     bool
	Importing      bool
	SettingsCursor int
	Updater        UpdaterState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Width          int
	Height         int

	store            *storage.Store
	platform         Platform
	exportDir        string
	rolloverInterval time.Duration
	drag             *dragdrop.Machine
	idGen            *model.IDGenerator
	now              func() time.Time

	// Bubble components used for rich TUI controls
	settingsTable  table.Model
	quickAddInput  textinput.Model
	newListInput   textinput.Model
	dayAddInput    textinput.Model
	miniAddInput   textinput.Model
	commandInput   textinput.Model
	importInput    textinput.Model
	titleInput     textinput.Model
	descArea       textarea.Model
	detailViewport viewport.Model
	updateProgress progress.Model
	checkSpinner   spinner.Model
	helpModel      help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type RolloverTickMsg struct {
	Now time.Time
}

type PulseClearMsg struct {
	TaskID string
}

type ExportedMsg struct {
	Path string
	Err  error
}

func NewModel() Model {
	now := time.Now
	tasks, lists, _ := model.Normalize(model.SeedTasks(now()), model.SeedLists())
	m := Model{
		CurrentView:    ViewList,
		Tasks:          tasks,
		Lists:          lists,
		Settings:       model.DefaultSettings(),
		Meta:           storage.DefaultMeta(),
		IncludeOverdue: true,
		KanbanColumn:   model.StatusTodo,
		CalendarMonth:  dateutil.MonthStart(now()),
		Keys: GlobalKeyMap{
			List:     "1",
			Kanban:   "2",
			Calendar: "3",
			Mini:     "4",
			Settings: "5",
			Help:     "?",
			Quit:     "q",
		},
		platform:         NoopPlatform{},
		rolloverInterval: time.Minute,
		drag:             dragdrop.NewMachine(dragdrop.DefaultThreshold),
		idGen:            &model.IDGenerator{},
		now:              now,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(store *storage.Store, platform Platform, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = store
	m.exportDir = cfg.ExportDir
	if cfg.RolloverIntervalSeconds > 0 {
		m.rolloverInterval = time.Duration(cfg.RolloverIntervalSeconds) * time.Second
	}
	if platform != nil {
		m.platform = platform
	}
	if store != nil {
		m.loadPersisted()
	}
	return m
}

// loadPersisted replaces the seed dataset with the stored one, falling
// back per document. Normalization reseeds the unassigned list and
// repairs orphans before anything renders.
func (m *Model) loadPersisted() {
	ctx, cancel := loadContext()
	defer cancel()
	m.Tasks = m.store.LoadTasks(ctx, m.Tasks)
	m.Lists = m.store.LoadLists(ctx, m.Lists)
	m.Settings = m.store.LoadSettings(ctx, m.Settings)
	m.Meta = m.store.LoadMeta(ctx, m.Meta)
	tasks, lists, changed := model.Normalize(m.Tasks, m.Lists)
	m.Tasks, m.Lists = tasks, lists
	if changed {
		m.store.SaveTasks(ctx, m.Tasks)
		m.store.SaveLists(ctx, m.Lists)
	}
	m.syncBubbleData()
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "设置", Width: 26},
		{Title: "状态", Width: 6},
	}
	m.settingsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(14))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.newListInput = textinput.New()
	m.newListInput.Prompt = "list> "
	m.newListInput.CharLimit = 64
	m.newListInput.Width = 24

	m.dayAddInput = textinput.New()
	m.dayAddInput.Prompt = "add> "
	m.dayAddInput.CharLimit = 256
	m.dayAddInput.Width = 42

	m.miniAddInput = textinput.New()
	m.miniAddInput.Prompt = "add> "
	m.miniAddInput.CharLimit = 256
	m.miniAddInput.Width = 36

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.importInput = textinput.New()
	m.importInput.Prompt = "path> "
	m.importInput.CharLimit = 512
	m.importInput.Width = 48

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "> "
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.SetWidth(54)
	m.descArea.SetHeight(8)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "描述 (markdown)"

	m.detailViewport = viewport.New(54, 10)
	m.updateProgress = progress.New(progress.WithDefaultGradient())

	m.checkSpinner = spinner.New()
	m.checkSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	tableRows := make([]table.Row, 0, len(settingsRows))
	for _, row := range settingsRows {
		state := "off"
		if row.get(m.Settings) {
			state = "on"
		}
		tableRows = append(tableRows, table.Row{row.label, state})
	}
	m.settingsTable.SetRows(tableRows)
	if m.SettingsCursor < len(tableRows) {
		m.settingsTable.SetCursor(m.SettingsCursor)
	}

	if t, ok := m.taskByID(m.Detail.TaskID); ok && m.Detail.Active {
		m.detailViewport.SetContent(renderDescPreview(t.Desc))
	}
}

func (m Model) todayISO() string {
	return dateutil.ToISO(m.now())
}

// currentRows is the dataset behind the list view: the today
// projection, or the selected custom list.
func (m Model) currentRows() []model.Task {
	if m.SelectedListID != "" {
		return derive.ListProjection(m.Tasks, m.SelectedListID)
	}
	return derive.TodayProjection(m.Tasks, m.todayISO(), m.IncludeOverdue)
}

// kanbanRows is the dataset behind the board: every task regardless of
// date, scoped to the selected custom list when one is open.
func (m Model) kanbanRows() []model.Task {
	if m.SelectedListID != "" {
		return derive.ListProjection(m.Tasks, m.SelectedListID)
	}
	return derive.SortTasks(m.Tasks)
}

func (m Model) taskByID(id string) (model.Task, bool) {
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Model) ensureCursor() {
	rows := m.currentRows()
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(rows) && len(rows) > 0 {
		m.Cursor = len(rows) - 1
	}
	if len(rows) > 0 {
		m.SelectedTaskID = rows[m.Cursor].ID
	} else {
		m.SelectedTaskID = ""
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewList, ViewKanban, ViewCalendar, ViewMini, ViewSettings:
		return true
	default:
		return false
	}
}
