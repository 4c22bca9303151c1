package update

import (
	"github.com/twodo-app/twodo/internal/dateutil"
	"github.com/twodo-app/twodo/internal/derive"
	"github.com/twodo-app/twodo/internal/model"
	"github.com/twodo-app/twodo/internal/views"
)

func renderDescPreview(desc string) string {
	return views.RenderMarkdown(desc)
}

func (m Model) taskRow(t model.Task, selected bool) views.TaskRowData {
	return views.TaskRowData{
		ID:        t.ID,
		Title:     t.Title,
		DateLabel: dateutil.FormatDateLabel(t.Date),
		Priority:  string(t.Priority),
		Completed: t.Completed,
		Overdue:   t.Date != "" && t.Date < m.todayISO(),
		Pulsing:   t.ID == m.PulseTaskID,
		Selected:  selected,
	}
}

func (m Model) renderSidebar() string {
	today := m.todayISO()
	items := make([]views.SidebarItemData, 0, len(m.Lists)+1)
	items = append(items, views.SidebarItemData{
		ID:       "",
		Name:     "今日",
		Count:    derive.PendingCount(derive.TodayProjection(m.Tasks, today, m.IncludeOverdue)),
		Selected: m.SelectedListID == "",
	})
	for _, l := range m.Lists {
		items = append(items, views.SidebarItemData{
			ID:       l.ID,
			Name:     l.Name,
			Count:    derive.PendingCount(derive.ListProjection(m.Tasks, l.ID)),
			Locked:   l.Locked,
			Selected: m.SelectedListID == l.ID,
		})
	}
	return views.RenderSidebar(views.SidebarData{
		Items:        items,
		NewListView:  m.newListInput.View(),
		AddingList:   m.AddingList,
		PendingTotal: derive.PendingCount(m.Tasks),
	})
}

func (m Model) renderListView() string {
	rows := m.currentRows()
	data := views.ListPanelData{
		Title:          "今日待办",
		IncludeOverdue: m.IncludeOverdue,
		ShowToggleHint: m.SelectedListID == "",
		QuickAddView:   m.quickAddInput.View(),
		QuickAdding:    m.QuickAdding,
		Rows:           make([]views.TaskRowData, 0, len(rows)),
	}
	if m.SelectedListID != "" {
		if l, ok := model.FindList(m.Lists, m.SelectedListID); ok {
			data.Title = l.Name
		}
	}
	for i, t := range rows {
		data.Rows = append(data.Rows, m.taskRow(t, i == m.Cursor))
	}
	return views.RenderListPanel(data)
}

func (m Model) renderKanbanView() string {
	cols := derive.KanbanColumns(m.kanbanRows())
	hover, hovering := m.drag.Hover()
	column := func(title string, status model.Status, tasks []model.Task) views.KanbanColumnData {
		out := views.KanbanColumnData{
			Title:     title,
			Highlight: hovering && hover == status,
			Cards:     make([]views.KanbanCardData, 0, len(tasks)),
		}
		for i, t := range tasks {
			out.Cards = append(out.Cards, views.KanbanCardData{
				ID:        t.ID,
				Title:     t.Title,
				DateLabel: dateutil.FormatDateLabel(t.Date),
				Priority:  string(t.Priority),
				Lifted:    m.drag.DraggingTaskID() == t.ID,
				Selected:  m.KanbanColumn == status && m.KanbanCursor == i,
			})
		}
		return out
	}
	return views.RenderKanbanPanel(views.KanbanPanelData{
		Todo:  column("待处理", model.StatusTodo, cols.Todo),
		Doing: column("进行中", model.StatusDoing, cols.Doing),
		Done:  column("已完成", model.StatusDone, cols.Done),
	})
}

func (m Model) renderCalendarView() string {
	today := m.todayISO()
	cells := derive.CalendarCells(m.Tasks, m.CalendarMonth)
	data := views.CalendarPanelData{
		MonthLabel: dateutil.FormatMonthLabel(m.CalendarMonth),
		Cells:      make([]views.CalendarCellData, 0, len(cells)),
	}
	for i, cell := range cells {
		titles := make([]string, 0, len(cell.Tasks))
		for _, t := range cell.Tasks {
			titles = append(titles, t.Title)
		}
		data.Cells = append(data.Cells, views.CalendarCellData{
			ISO:       cell.ISO,
			Day:       cell.Day,
			InMonth:   cell.InMonth,
			Today:     cell.ISO == today,
			Selected:  i == m.CalendarCursor,
			Holidays:  dateutil.HolidayLabels(cell.ISO),
			SolarTerm: dateutil.SolarTermLabel(cell.ISO),
			Titles:    titles,
			Overflow:  cell.Overflow,
		})
	}
	return views.RenderCalendarPanel(data)
}

func (m Model) renderMiniView() string {
	sections := derive.DeriveMiniSections(m.Tasks, m.todayISO())
	rows := func(tasks []model.Task) []views.TaskRowData {
		out := make([]views.TaskRowData, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, m.taskRow(t, false))
		}
		return out
	}
	return views.RenderMiniPanel(views.MiniPanelData{
		Pinned:      m.MiniPinned,
		AddView:     m.miniAddInput.View(),
		TodayTodo:   rows(sections.TodayTodo),
		TodayDone:   rows(sections.TodayDone),
		OverdueTodo: rows(sections.OverdueTodo),
	})
}

func (m Model) renderSettingsView() string {
	rows := make([]views.SettingsRowData, 0, len(settingsRows))
	for i, row := range settingsRows {
		rows = append(rows, views.SettingsRowData{
			Key:      row.key,
			Label:    row.label,
			On:       row.get(m.Settings),
			Selected: i == m.SettingsCursor,
		})
	}
	return views.RenderSettingsPanel(views.SettingsPanelData{
		TableView: m.settingsTable.View(),
		Rows:      rows,
		Updater: views.UpdaterData{
			State:        string(m.Updater.Phase),
			Version:      m.Updater.Version,
			SpinnerView:  m.checkSpinner.View(),
			ProgressView: m.updateProgress.ViewAs(m.Updater.Progress),
			Error:        m.Updater.Err,
		},
	})
}

func (m Model) renderModal() string {
	switch {
	case m.Detail.Active:
		return m.renderDetailModal()
	case m.DayModal.Active:
		return m.renderDayModal()
	case m.QuickAdding && m.CurrentView != ViewList:
		// The list view renders the quick add inline.
		return views.RenderQuickAddModal(m.quickAddInput.View())
	case m.AddingList && m.CurrentView != ViewList:
		// The sidebar renders the new-list input inline.
		return views.RenderNewListModal(m.newListInput.View())
	case m.Importing:
		return views.RenderImportModal(m.importInput.View())
	case m.Palette.Active:
		return views.RenderCommandPalette(true, m.Palette.Input)
	}
	return ""
}

func (m Model) renderDetailModal() string {
	t, ok := m.taskByID(m.Detail.TaskID)
	if !ok {
		return ""
	}
	listName := ""
	if l, found := model.FindList(m.Lists, t.ListID); found {
		listName = l.Name
	}
	return views.RenderDetailModal(views.DetailModalData{
		ID:          t.ID,
		TitleView:   m.titleInput.View(),
		DescView:    m.descArea.View(),
		DescPreview: m.detailViewport.View(),
		EditingDesc: m.Detail.EditingDesc,
		Priority:    string(t.Priority),
		DateLabel:   dateutil.FormatDateLabel(t.Date),
		ListName:    listName,
		Status:      string(t.Status),
	})
}

func (m Model) renderDayModal() string {
	rows := derive.DayTasks(m.Tasks, m.DayModal.ISO)
	labels := append([]string(nil), dateutil.HolidayLabels(m.DayModal.ISO)...)
	if term := dateutil.SolarTermLabel(m.DayModal.ISO); term != "" {
		labels = append(labels, term)
	}
	data := views.DayModalData{
		DateLabel: dateutil.FormatDateLabel(m.DayModal.ISO),
		Labels:    labels,
		AddView:   m.dayAddInput.View(),
		Adding:    m.DayModal.Adding,
		Rows:      make([]views.TaskRowData, 0, len(rows)),
	}
	for i, t := range rows {
		data.Rows = append(data.Rows, m.taskRow(t, i == m.DayModal.Cursor))
	}
	return views.RenderDayModal(data)
}
