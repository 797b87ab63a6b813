package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdesk/internal/commands"
	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/storage"
)

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.Auth.Field = (m.Auth.Field + 1) % 2
		m.focusAuthField()
		return m, nil
	case "ctrl+r":
		if m.Auth.Mode == AuthModeLogin {
			m.Auth.Mode = AuthModeRegister
		} else {
			m.Auth.Mode = AuthModeLogin
		}
		m.Auth.Err = ""
		return m, nil
	case "enter":
		username := strings.TrimSpace(m.Auth.inputs[0].Value())
		password := m.Auth.inputs[1].Value()
		if username == "" || password == "" {
			m.Auth.Err = "username and password are required"
			return m, nil
		}
		return m, authCmd(m.svc, m.Auth.Mode, username, password)
	}

	var cmd tea.Cmd
	m.Auth.inputs[m.Auth.Field], cmd = m.Auth.inputs[m.Auth.Field].Update(msg)
	return m, cmd
}

func (m *Model) focusAuthField() {
	for i := range m.Auth.inputs {
		if i == m.Auth.Field {
			m.Auth.inputs[i].Focus()
		} else {
			m.Auth.inputs[i].Blur()
		}
	}
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.openForm(storage.Task{})
		return m, nil
	case "e":
		sel, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task is selected", IsError: true}
			return m, nil
		}
		return m, taskForEditCmd(m.svc, m.UserID, sel.ID)
	case "d":
		sel, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task is selected", IsError: true}
			return m, nil
		}
		return m, deleteTaskCmd(m.svc, m.UserID, sel.ID)
	case "s":
		m.Sort = toggleSort(m.Sort)
		m.Status = StatusBar{Text: fmt.Sprintf("sorted by %s", sortLabel(m.Sort))}
		return m, loadTasksCmd(m.svc, m.UserID, m.Sort)
	case "/":
		m.Palette.Active = true
		m.Palette.input.SetValue("")
		m.Palette.input.Focus()
		return m, nil
	case "esc":
		m.logout()
		return m, nil
	case "j", "down":
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
		m.syncTaskTable()
		return m, nil
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncTaskTable()
		return m, nil
	}
	return m, nil
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.input.Blur()
		return m, nil
	case "enter":
		raw := m.Palette.input.Value()
		m.Palette.Active = false
		m.Palette.input.Blur()
		return m.runPaletteCommand(raw)
	}

	var cmd tea.Cmd
	m.Palette.input, cmd = m.Palette.input.Update(msg)
	return m, cmd
}

func (m Model) runPaletteCommand(raw string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Sort: func(a commands.SortArgs) (commands.Result, error) {
			if a.Option == "priority" {
				m.Sort = storage.SortByPriority
			} else {
				m.Sort = storage.SortByDeadline
			}
			next = loadTasksCmd(m.svc, m.UserID, m.Sort)
			return commands.Result{Message: fmt.Sprintf("sorted by %s", sortLabel(m.Sort))}, nil
		},
		Refresh: func() (commands.Result, error) {
			next = loadTasksCmd(m.svc, m.UserID, m.Sort)
			return commands.Result{Message: "task list refreshed"}, nil
		},
		Logout: func() (commands.Result, error) {
			m.logout()
			return commands.Result{Message: "signed out"}, nil
		},
		Quit: func() (commands.Result, error) {
			m.Quitting = true
			next = tea.Quit
			return commands.Result{Message: "quitting"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, next
}

func (m *Model) logout() {
	m.UserID = 0
	m.Username = ""
	m.Tasks = nil
	m.Cursor = 0
	m.Degraded = false
	m.LastAlert = nil
	m.Screen = ScreenAuth
	m.Auth = AuthState{Mode: AuthModeLogin, inputs: m.Auth.inputs}
	m.Auth.inputs[0].SetValue("")
	m.Auth.inputs[1].SetValue("")
	m.Auth.Field = 0
	m.focusAuthField()
	m.Status = StatusBar{Text: "signed out"}
	m.syncTaskTable()
}

func (m *Model) openForm(t storage.Task) {
	m.Form.EditingID = t.ID
	m.Form.Err = ""
	m.Form.Field = 0
	values := [formFieldCount]string{t.Title, t.Description, t.Priority, t.DeadlineStr, ""}
	if t.ID != 0 {
		values[formFieldDuration] = itoa(t.Duration)
	}
	for i := range m.Form.inputs {
		m.Form.inputs[i].SetValue(values[i])
		if i == 0 {
			m.Form.inputs[i].Focus()
		} else {
			m.Form.inputs[i].Blur()
		}
	}
	m.Screen = ScreenForm
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Screen = ScreenTasks
		m.Form.Err = ""
		return m, nil
	case "tab", "down":
		m.moveFormField(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFormField(-1)
		return m, nil
	case "enter":
		in := model.TaskInput{
			Title:        m.Form.inputs[formFieldTitle].Value(),
			Description:  m.Form.inputs[formFieldDescription].Value(),
			Priority:     m.Form.inputs[formFieldPriority].Value(),
			DeadlineText: m.Form.inputs[formFieldDeadline].Value(),
			DurationText: m.Form.inputs[formFieldDuration].Value(),
		}
		return m, saveTaskCmd(m, in)
	}

	var cmd tea.Cmd
	m.Form.inputs[m.Form.Field], cmd = m.Form.inputs[m.Form.Field].Update(msg)
	return m, cmd
}

func (m *Model) moveFormField(delta int) {
	m.Form.Field = (m.Form.Field + delta + formFieldCount) % formFieldCount
	for i := range m.Form.inputs {
		if i == m.Form.Field {
			m.Form.inputs[i].Focus()
		} else {
			m.Form.inputs[i].Blur()
		}
	}
}

func authCmd(svc *service.TaskService, mode AuthMode, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			id  int64
			err error
		)
		if mode == AuthModeRegister {
			id, err = svc.Register(ctx, username, password)
		} else {
			id, err = svc.Login(ctx, username, password)
		}
		return authResultMsg{UserID: id, Username: username, Err: err}
	}
}

func loadTasksCmd(svc *service.TaskService, owner int64, sort storage.SortOption) tea.Cmd {
	return func() tea.Msg {
		tasks, degraded := svc.ListTasks(context.Background(), owner, sort)
		return tasksLoadedMsg{Tasks: tasks, Degraded: degraded}
	}
}

func saveTaskCmd(m Model, in model.TaskInput) tea.Cmd {
	svc := m.svc
	engine := m.engine
	logger := m.logger
	owner := m.UserID
	editingID := m.Form.EditingID
	return func() tea.Msg {
		ctx := context.Background()
		var (
			id  int64
			err error
		)
		if editingID != 0 {
			id = editingID
			err = svc.EditTask(ctx, owner, editingID, in)
		} else {
			id, err = svc.AddTask(ctx, owner, in)
		}
		if err == nil && engine != nil {
			if deadline, perr := model.ParseDeadline(strings.TrimSpace(in.DeadlineText)); perr == nil {
				if serr := engine.ScheduleTask(id, strings.TrimSpace(in.Title), deadline, timeNow()); serr != nil {
					logger.Warn().Err(serr).Int64("task_id", id).Msg("deadline alert not scheduled")
				}
			}
		}
		return taskSavedMsg{ID: id, Err: err}
	}
}

func deleteTaskCmd(svc *service.TaskService, owner, taskID int64) tea.Cmd {
	return func() tea.Msg {
		err := svc.DeleteTask(context.Background(), owner, taskID)
		return taskDeletedMsg{ID: taskID, Err: err}
	}
}

func taskForEditCmd(svc *service.TaskService, owner, taskID int64) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.TaskForEdit(context.Background(), owner, taskID)
		return taskForEditMsg{Task: t, Err: err}
	}
}

func authErrorText(mode AuthMode, err error) string {
	if errors.Is(err, storage.ErrUsernameTaken) {
		return "that username is already taken"
	}
	if errors.Is(err, storage.ErrNotFound) {
		return "invalid username or password"
	}
	if mode == AuthModeRegister {
		return fmt.Sprintf("registration failed: %v", err)
	}
	return fmt.Sprintf("login failed: %v", err)
}

func savedErrorText(err error) string {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if errors.Is(err, service.ErrNoSelection) {
		return "no task is selected"
	}
	if errors.Is(err, storage.ErrNotFound) {
		return "task no longer exists"
	}
	return fmt.Sprintf("saving failed: %v", err)
}

func deletedErrorText(err error) string {
	if errors.Is(err, service.ErrNoSelection) {
		return "no task is selected"
	}
	if errors.Is(err, storage.ErrNotFound) {
		return "task no longer exists"
	}
	return fmt.Sprintf("deletion failed: %v", err)
}

func editErrorText(err error) string {
	if errors.Is(err, storage.ErrNotFound) {
		return "task no longer exists"
	}
	return fmt.Sprintf("loading task failed: %v", err)
}

func toggleSort(s storage.SortOption) storage.SortOption {
	if s == storage.SortByDeadline {
		return storage.SortByPriority
	}
	return storage.SortByDeadline
}

func sortLabel(s storage.SortOption) string {
	if s == storage.SortByPriority {
		return "priority"
	}
	return "deadline"
}
