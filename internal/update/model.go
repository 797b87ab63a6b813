package update

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/taskdesk/internal/scheduler"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/storage"
)

type Screen string

const (
	ScreenAuth  Screen = "Auth"
	ScreenTasks Screen = "Tasks"
	ScreenForm  Screen = "Form"
)

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

type StatusBar struct {
	Text    string
	IsError bool
}

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldPriority
	formFieldDeadline
	formFieldDuration
	formFieldCount
)

type AuthState struct {
	Mode   AuthMode
	Field  int
	Err    string
	inputs [2]textinput.Model
}

type FormState struct {
	EditingID int64
	Field     int
	Err       string
	inputs    [formFieldCount]textinput.Model
}

type PaletteState struct {
	Active bool
	input  textinput.Model
}

type Model struct {
	Screen   Screen
	Auth     AuthState
	Form     FormState
	Palette  PaletteState
	Status   StatusBar
	Quitting bool

	UserID   int64
	Username string

	Tasks    []storage.Task
	Cursor   int
	Sort     storage.SortOption
	Degraded bool

	LastAlert *scheduler.Alert

	svc             *service.TaskService
	engine          *scheduler.Engine
	logger          zerolog.Logger
	refreshInterval time.Duration
	now             time.Time

	taskTable table.Model
}

type authResultMsg struct {
	UserID   int64
	Username string
	Err      error
}

type tasksLoadedMsg struct {
	Tasks    []storage.Task
	Degraded bool
}

type taskSavedMsg struct {
	ID  int64
	Err error
}

type taskDeletedMsg struct {
	ID  int64
	Err error
}

type taskForEditMsg struct {
	Task storage.Task
	Err  error
}

type alertMsg struct {
	Alert scheduler.Alert
}

type refreshTickMsg struct {
	Now time.Time
}

func NewModel(svc *service.TaskService, engine *scheduler.Engine, logger zerolog.Logger, refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = time.Minute
	}
	m := Model{
		Screen:          ScreenAuth,
		Auth:            AuthState{Mode: AuthModeLogin},
		Sort:            storage.SortByDeadline,
		svc:             svc,
		engine:          engine,
		logger:          logger,
		refreshInterval: refreshInterval,
		now:             time.Now(),
	}
	m.initComponents()
	return m
}

func (m *Model) initComponents() {
	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	m.Auth.inputs = [2]textinput.Model{username, password}

	placeholders := [formFieldCount]string{
		"title",
		"description (markdown)",
		"priority: High, Medium or Low",
		"deadline: DD/MM/YYYY HH:MM AM/PM",
		"duration in minutes",
	}
	for i := range m.Form.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		in.Width = 44
		m.Form.inputs[i] = in
	}

	palette := textinput.New()
	palette.Prompt = "/"
	palette.CharLimit = 64
	palette.Width = 40
	m.Palette.input = palette

	cols := []table.Column{
		{Title: "Title", Width: 24},
		{Title: "Priority", Width: 8},
		{Title: "Deadline", Width: 20},
		{Title: "Min", Width: 5},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))
}

func (m *Model) syncTaskTable() {
	rows := make([]table.Row, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		rows = append(rows, table.Row{t.Title, t.Priority, t.DeadlineStr, itoa(t.Duration)})
	}
	m.taskTable.SetRows(rows)
	if m.Cursor >= len(rows) && len(rows) > 0 {
		m.Cursor = len(rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if len(rows) > 0 {
		m.taskTable.SetCursor(m.Cursor)
	}
}

func (m Model) selectedTask() (storage.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return storage.Task{}, false
	}
	return m.Tasks[m.Cursor], true
}
