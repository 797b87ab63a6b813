package storage

import "time"

type User struct {
	ID       int64
	Username string
	Password string
}

type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Priority    string
	DeadlineStr string
	Deadline    time.Time
	Duration    int
}

type SortOption string

const (
	SortByDeadline SortOption = "by_deadline"
	SortByPriority SortOption = "by_priority"
)
