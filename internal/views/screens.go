package views

import (
	"fmt"
	"strings"
)

type LoginPanelData struct {
	Mode          string
	UsernameView  string
	PasswordView  string
	ActiveField   int
	ErrorText     string
	StatusMessage string
}

type TaskRowData struct {
	ID       int64
	Title    string
	Priority string
	Deadline string
	Duration int
	Urgency  string
}

type TaskListPanelData struct {
	Username   string
	SortLabel  string
	TableView  string
	Rows       []TaskRowData
	SelectedID int64
	Degraded   bool
}

type TaskDetailPanelData struct {
	Selected    *TaskRowData
	Description string
}

type TaskFormPanelData struct {
	Title       string
	FieldViews  []string
	FieldLabels []string
	ActiveField int
	ErrorText   string
}

func RenderLoginPanel(data LoginPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s:\n", data.Mode))
	b.WriteString("actions: [tab]field [enter]submit [ctrl+r]switch mode [esc]quit\n")
	b.WriteString(fieldLine("username", data.UsernameView, data.ActiveField == 0))
	b.WriteString(fieldLine("password", data.PasswordView, data.ActiveField == 1))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	if data.StatusMessage != "" {
		b.WriteString(data.StatusMessage + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks for %s (sorted by %s):\n", data.Username, data.SortLabel))
	b.WriteString("actions: [a]add [e]edit [d]delete [s]sort [/]command [esc]logout\n")
	if data.Degraded {
		b.WriteString("warning: task list could not be refreshed, showing last known state\n")
	}
	b.WriteString(data.TableView + "\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no tasks yet, press [a] to add one)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s | %s | %s | %dm\n",
			cursor, urgencyBadge(row.Urgency), row.Title, row.Priority, row.Deadline, row.Duration))
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetailPanel(data TaskDetailPanelData) string {
	if data.Selected == nil {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("title: %s\n", data.Selected.Title))
	b.WriteString(fmt.Sprintf("priority: %s\n", data.Selected.Priority))
	b.WriteString(fmt.Sprintf("deadline: %s (%s)\n", data.Selected.Deadline, strings.ToLower(data.Selected.Urgency)))
	b.WriteString(fmt.Sprintf("duration: %d minutes\n", data.Selected.Duration))
	if data.Description != "" {
		b.WriteString("\n" + RenderMarkdown(data.Description))
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskFormPanel(data TaskFormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	b.WriteString("actions: [tab]field [enter]save [esc]cancel\n")
	for i, view := range data.FieldViews {
		label := ""
		if i < len(data.FieldLabels) {
			label = data.FieldLabels[i]
		}
		b.WriteString(fieldLine(label, view, i == data.ActiveField))
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderAlert(urgency string, title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	return fmt.Sprintf("alert: [%s] %s", strings.ToUpper(urgency), title)
}

func fieldLine(label, view string, active bool) string {
	cursor := " "
	if active {
		cursor = ">"
	}
	return fmt.Sprintf("%s %s: %s\n", cursor, label, view)
}

func urgencyBadge(urgency string) string {
	switch urgency {
	case "Overdue":
		return "[RED]"
	case "Urgent":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}
