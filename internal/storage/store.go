package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrUsernameTaken = errors.New("storage: username already taken")
)

// Store keeps users and their tasks. Every task operation is scoped by
// the owning user's id; an id that belongs to another user is reported
// as ErrNotFound, never as someone else's row.
type Store interface {
	CreateUser(ctx context.Context, username, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	DeleteUser(ctx context.Context, id int64) error

	InsertTask(ctx context.Context, in Task) (int64, error)
	GetTask(ctx context.Context, owner, id int64) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, owner, id int64) error
	ListTasks(ctx context.Context, owner int64, sort SortOption) ([]Task, error)
}
