package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ValidationKind string

const (
	MissingRequiredField  ValidationKind = "missing_required_field"
	InvalidPriority       ValidationKind = "invalid_priority"
	InvalidDuration       ValidationKind = "invalid_duration"
	InvalidDeadlineFormat ValidationKind = "invalid_deadline_format"
)

type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// TaskInput is the raw caller-supplied field set, exactly as typed.
type TaskInput struct {
	Title        string
	Description  string
	Priority     string
	DeadlineText string
	DurationText string
}

// ValidatedFields is task input that passed every rule and is safe to
// hand to the store.
type ValidatedFields struct {
	Title       string
	Description string
	Priority    Priority
	DeadlineStr string
	Deadline    time.Time
	Duration    int
}

// ValidateTaskInput checks the raw fields in a fixed order and
// short-circuits on the first failing rule, so callers always see
// exactly one ValidationError: required fields, then priority, then
// duration, then deadline format.
func ValidateTaskInput(in TaskInput) (ValidatedFields, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.DeadlineText) == "" || strings.TrimSpace(in.DurationText) == "" {
		return ValidatedFields{}, &ValidationError{
			Kind:    MissingRequiredField,
			Message: "title, deadline and duration are required",
		}
	}

	priority := Priority(in.Priority)
	if !priority.IsValid() {
		return ValidatedFields{}, &ValidationError{
			Kind:    InvalidPriority,
			Message: fmt.Sprintf("priority must be High, Medium or Low, got %q", in.Priority),
		}
	}

	duration, err := strconv.Atoi(strings.TrimSpace(in.DurationText))
	if err != nil || duration <= 0 {
		return ValidatedFields{}, &ValidationError{
			Kind:    InvalidDuration,
			Message: fmt.Sprintf("duration must be a positive integer, got %q", in.DurationText),
		}
	}

	deadlineText := strings.TrimSpace(in.DeadlineText)
	deadline, err := ParseDeadline(deadlineText)
	if err != nil {
		return ValidatedFields{}, &ValidationError{
			Kind:    InvalidDeadlineFormat,
			Message: fmt.Sprintf("deadline must match DD/MM/YYYY HH:MM AM/PM, got %q", deadlineText),
		}
	}

	return ValidatedFields{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		DeadlineStr: deadlineText,
		Deadline:    deadline,
		Duration:    duration,
	}, nil
}
