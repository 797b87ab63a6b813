package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

// DeadlineLayout is the fixed textual deadline format shown to and typed
// by the user, e.g. "25/12/2024 11:30 PM".
const DeadlineLayout = "02/01/2006 03:04 PM"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting: High=1, Medium=2, Low=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Priority    Priority
	DeadlineStr string
	Deadline    time.Time
	Duration    int
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.Duration <= 0 {
		return errors.New("model: task duration must be positive")
	}
	if t.Deadline.IsZero() {
		return errors.New("model: task deadline is required")
	}
	return nil
}

// ParseDeadline parses deadline text under the fixed layout.
func ParseDeadline(text string) (time.Time, error) {
	return time.ParseInLocation(DeadlineLayout, text, time.Local)
}
