package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/scheduler"
	"github.com/sandeepkv93/taskdesk/internal/storage"
	"github.com/sandeepkv93/taskdesk/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{refreshTickCmd(m.refreshInterval)}
	if m.engine != nil {
		cmds = append(cmds, waitForAlertCmd(m.engine.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Screen {
		case ScreenAuth:
			return m.handleAuthKey(typed)
		case ScreenForm:
			return m.handleFormKey(typed)
		default:
			if m.Palette.Active {
				return m.handlePaletteKey(typed)
			}
			return m.handleTasksKey(typed)
		}

	case authResultMsg:
		if typed.Err != nil {
			m.Auth.Err = authErrorText(m.Auth.Mode, typed.Err)
			return m, nil
		}
		m.UserID = typed.UserID
		m.Username = typed.Username
		m.Auth.Err = ""
		m.Auth.inputs[1].SetValue("")
		m.Screen = ScreenTasks
		m.Status = StatusBar{Text: fmt.Sprintf("signed in as %s", typed.Username)}
		return m, loadTasksCmd(m.svc, m.UserID, m.Sort)

	case tasksLoadedMsg:
		m.Degraded = typed.Degraded
		m.now = time.Now()
		if typed.Degraded {
			// Keep whatever was on screen; the refresh brought nothing usable.
			m.Status = StatusBar{Text: "task list refresh failed, showing last known state", IsError: true}
			return m, nil
		}
		m.Tasks = typed.Tasks
		m.syncTaskTable()
		return m, nil

	case taskSavedMsg:
		if typed.Err != nil {
			m.Form.Err = savedErrorText(typed.Err)
			return m, nil
		}
		m.Screen = ScreenTasks
		m.Form.Err = ""
		m.Status = StatusBar{Text: "task saved"}
		return m, loadTasksCmd(m.svc, m.UserID, m.Sort)

	case taskDeletedMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: deletedErrorText(typed.Err), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "task deleted"}
		return m, loadTasksCmd(m.svc, m.UserID, m.Sort)

	case taskForEditMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: editErrorText(typed.Err), IsError: true}
			return m, nil
		}
		m.openForm(typed.Task)
		return m, nil

	case alertMsg:
		m.LastAlert = &typed.Alert
		m.Status = StatusBar{
			Text:    fmt.Sprintf("%s: %s", strings.ToLower(string(typed.Alert.Urgency)), typed.Alert.Title),
			IsError: typed.Alert.Urgency == model.UrgencyOverdue,
		}
		cmds := []tea.Cmd{}
		if m.engine != nil {
			cmds = append(cmds, waitForAlertCmd(m.engine.C()))
		}
		if m.Screen == ScreenTasks && m.UserID != 0 {
			cmds = append(cmds, loadTasksCmd(m.svc, m.UserID, m.Sort))
		}
		return m, tea.Batch(cmds...)

	case refreshTickMsg:
		m.now = typed.Now
		cmds := []tea.Cmd{refreshTickCmd(m.refreshInterval)}
		if m.Screen == ScreenTasks && m.UserID != 0 {
			cmds = append(cmds, loadTasksCmd(m.svc, m.UserID, m.Sort))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}

	header := "taskdesk"
	if m.Username != "" {
		header = fmt.Sprintf("taskdesk | %s | sorted by %s", m.Username, sortLabel(m.Sort))
	}

	listPane := ""
	detailPane := ""
	footer := ""
	switch m.Screen {
	case ScreenAuth:
		listPane = m.renderAuthPanel()
		footer = "keys: tab field | enter submit | ctrl+r switch login/register | ctrl+c quit"
	case ScreenForm:
		listPane = m.renderFormPanel()
		footer = "keys: tab field | enter save | esc cancel"
	default:
		listPane = m.renderTaskListPanel()
		detailPane = m.renderDetailPanel()
		footer = "keys: a add | e edit | d delete | s sort | / command | esc logout | ctrl+c quit"
		if m.Palette.Active {
			detailPane = views.RenderCommandPalette(true, m.Palette.input.Value()) + "\n" + detailPane
		}
	}

	alertLine := ""
	if m.LastAlert != nil {
		alertLine = views.RenderAlert(string(m.LastAlert.Urgency), m.LastAlert.Title)
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		ListPane:   listPane,
		DetailPane: detailPane,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     footer,
		Alert:      alertLine,
	})
}

func (m Model) renderAuthPanel() string {
	return views.RenderLoginPanel(views.LoginPanelData{
		Mode:         string(m.Auth.Mode),
		UsernameView: m.Auth.inputs[0].View(),
		PasswordView: m.Auth.inputs[1].View(),
		ActiveField:  m.Auth.Field,
		ErrorText:    m.Auth.Err,
	})
}

func (m Model) renderTaskListPanel() string {
	rows := make([]views.TaskRowData, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		rows = append(rows, taskRowData(t, m.now))
	}
	selectedID := int64(0)
	if sel, ok := m.selectedTask(); ok {
		selectedID = sel.ID
	}
	return views.RenderTaskListPanel(views.TaskListPanelData{
		Username:   m.Username,
		SortLabel:  sortLabel(m.Sort),
		TableView:  m.taskTable.View(),
		Rows:       rows,
		SelectedID: selectedID,
		Degraded:   m.Degraded,
	})
}

func (m Model) renderDetailPanel() string {
	sel, ok := m.selectedTask()
	if !ok {
		return views.RenderTaskDetailPanel(views.TaskDetailPanelData{})
	}
	row := taskRowData(sel, m.now)
	return views.RenderTaskDetailPanel(views.TaskDetailPanelData{
		Selected:    &row,
		Description: sel.Description,
	})
}

func (m Model) renderFormPanel() string {
	title := "add task"
	if m.Form.EditingID != 0 {
		title = fmt.Sprintf("edit task %d", m.Form.EditingID)
	}
	fieldViews := make([]string, 0, formFieldCount)
	for i := range m.Form.inputs {
		fieldViews = append(fieldViews, m.Form.inputs[i].View())
	}
	return views.RenderTaskFormPanel(views.TaskFormPanelData{
		Title:       title,
		FieldViews:  fieldViews,
		FieldLabels: []string{"title", "description", "priority", "deadline", "duration"},
		ActiveField: m.Form.Field,
		ErrorText:   m.Form.Err,
	})
}

func taskRowData(t storage.Task, now time.Time) views.TaskRowData {
	return views.TaskRowData{
		ID:       t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Deadline: t.DeadlineStr,
		Duration: t.Duration,
		Urgency:  string(model.ClassifyUrgency(now, t.Deadline)),
	}
}

func waitForAlertCmd(ch <-chan scheduler.Alert) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return alertMsg{Alert: a}
	}
}

func refreshTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg{Now: t}
	})
}
