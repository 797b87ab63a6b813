package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSQLiteStore(db *sql.DB, logger zerolog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migrations.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) CreateUser(ctx context.Context, username, password string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			s.logger.Error().Str("username", username).Msg("username already taken")
			return 0, ErrUsernameTaken
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to insert user")
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("user_id", id).Str("username", username).Msg("inserted user")
	return id, nil
}

// Authenticate looks a user up by exact (username, password) match. A
// wrong password and an unknown username are both ErrNotFound, so the
// caller cannot enumerate accounts.
func (s *SQLiteStore) Authenticate(ctx context.Context, username, password string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username FROM users WHERE username = ? AND password = ?`,
		username, password,
	).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to select user")
		return User{}, err
	}
	s.logger.Debug().Int64("user_id", u.ID).Msg("authenticated user")
	return u, nil
}

// DeleteUser removes the user row; the schema cascades the delete to
// every task the user owns.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) InsertTask(ctx context.Context, in Task) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, priority, deadline_str, deadline_at, duration, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, in.Priority, in.DeadlineStr, mustTime(in.Deadline), in.Duration, in.OwnerID,
	)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", in.OwnerID).Msg("failed to insert task")
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("task_id", id).Int64("user_id", in.OwnerID).Msg("inserted task")
	return id, nil
}

func (s *SQLiteStore) GetTask(ctx context.Context, owner, id int64) (Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, priority, deadline_str, deadline_at, duration, user_id
		FROM tasks WHERE id = ? AND user_id = ?`, id, owner)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		s.logger.Error().Err(err).Int64("task_id", id).Msg("failed to select task")
		return Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) UpdateTask(ctx context.Context, in Task) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, deadline_str = ?, deadline_at = ?, duration = ?
		WHERE id = ? AND user_id = ?`,
		in.Title, in.Description, in.Priority, in.DeadlineStr, mustTime(in.Deadline), in.Duration, in.ID, in.OwnerID,
	)
	if err != nil {
		s.logger.Error().Err(err).Int64("task_id", in.ID).Msg("failed to update task")
		return err
	}
	return checkRowsAffected(res)
}

// DeleteTask confirms owner-scoped existence before deleting, so a
// missing or foreign-owned id is ErrNotFound rather than a delete that
// silently matched zero rows.
func (s *SQLiteStore) DeleteTask(ctx context.Context, owner, id int64) error {
	var found int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM tasks WHERE id = ? AND user_id = ?`, id, owner,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		s.logger.Error().Err(err).Int64("task_id", id).Msg("failed to check task existence")
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, owner)
	if err != nil {
		s.logger.Error().Err(err).Int64("task_id", id).Msg("failed to delete task")
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) ListTasks(ctx context.Context, owner int64, sort SortOption) ([]Task, error) {
	query := `
		SELECT id, title, description, priority, deadline_str, deadline_at, duration, user_id
		FROM tasks WHERE user_id = ?`
	switch sort {
	case SortByPriority:
		query += `
		ORDER BY CASE priority
			WHEN 'High' THEN 1
			WHEN 'Medium' THEN 2
			WHEN 'Low' THEN 3
		END, deadline_at ASC`
	default:
		query += ` ORDER BY deadline_at ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", owner).Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var deadline string
	if err := s.Scan(&out.ID, &out.Title, &out.Description, &out.Priority, &out.DeadlineStr, &deadline, &out.Duration, &out.OwnerID); err != nil {
		return Task{}, err
	}
	deadlineAt, err := parseRequiredTime(deadline)
	if err != nil {
		return Task{}, err
	}
	out.Deadline = deadlineAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
