package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/taskdesk/internal/model"
	"github.com/sandeepkv93/taskdesk/internal/storage"
)

// ErrNoSelection reports that the caller asked for a task operation
// without naming a task (the UI had no row selected).
var ErrNoSelection = errors.New("service: no task selected")

// ErrNotFound mirrors the store's sentinel: the task id does not exist
// for this owner. Foreign-owned ids look exactly the same.
var ErrNotFound = storage.ErrNotFound

// TaskService validates caller-supplied task fields before they reach
// the store and coordinates multi-step flows such as load-before-edit.
type TaskService struct {
	logger zerolog.Logger
	store  storage.Store
}

func New(logger zerolog.Logger, store storage.Store) *TaskService {
	return &TaskService{logger: logger, store: store}
}

func (s *TaskService) Register(ctx context.Context, username, password string) (int64, error) {
	id, err := s.store.CreateUser(ctx, username, password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("registration failed")
		return 0, err
	}
	s.logger.Info().Int64("user_id", id).Str("username", username).Msg("registered user")
	return id, nil
}

func (s *TaskService) Login(ctx context.Context, username, password string) (int64, error) {
	user, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Info().Str("username", username).Msg("login rejected")
			return 0, err
		}
		s.logger.Error().Err(err).Str("username", username).Msg("login failed")
		return 0, err
	}
	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("logged in")
	return user.ID, nil
}

func (s *TaskService) AddTask(ctx context.Context, owner int64, in model.TaskInput) (int64, error) {
	fields, err := model.ValidateTaskInput(in)
	if err != nil {
		s.logger.Warn().Err(err).Int64("user_id", owner).Msg("add task rejected")
		return 0, err
	}

	id, err := s.store.InsertTask(ctx, recordFromFields(owner, 0, fields))
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	s.logger.Info().Int64("task_id", id).Int64("user_id", owner).Msg("added task")
	return id, nil
}

func (s *TaskService) EditTask(ctx context.Context, owner, taskID int64, in model.TaskInput) error {
	if taskID == 0 {
		s.logger.Warn().Int64("user_id", owner).Msg("no task selected for edit")
		return ErrNoSelection
	}

	fields, err := model.ValidateTaskInput(in)
	if err != nil {
		s.logger.Warn().Err(err).Int64("task_id", taskID).Msg("edit task rejected")
		return err
	}

	if err := s.store.UpdateTask(ctx, recordFromFields(owner, taskID, fields)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().Int64("task_id", taskID).Int64("user_id", owner).Msg("task not found for edit")
			return err
		}
		return fmt.Errorf("update task: %w", err)
	}
	s.logger.Info().Int64("task_id", taskID).Int64("user_id", owner).Msg("updated task")
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, owner, taskID int64) error {
	if taskID == 0 {
		s.logger.Warn().Int64("user_id", owner).Msg("no task selected for delete")
		return ErrNoSelection
	}

	if err := s.store.DeleteTask(ctx, owner, taskID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().Int64("task_id", taskID).Int64("user_id", owner).Msg("task not found for delete")
			return err
		}
		return fmt.Errorf("delete task: %w", err)
	}
	s.logger.Info().Int64("task_id", taskID).Int64("user_id", owner).Msg("deleted task")
	return nil
}

// TaskForEdit loads a task so the edit form can be pre-filled.
func (s *TaskService) TaskForEdit(ctx context.Context, owner, taskID int64) (storage.Task, error) {
	if taskID == 0 {
		return storage.Task{}, ErrNoSelection
	}
	task, err := s.store.GetTask(ctx, owner, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Task{}, err
		}
		return storage.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListTasks never fails outward. A store failure degrades to an empty
// list with degraded=true so the caller can tell "nothing there" from
// "could not look".
func (s *TaskService) ListTasks(ctx context.Context, owner int64, sort storage.SortOption) ([]storage.Task, bool) {
	tasks, err := s.store.ListTasks(ctx, owner, sort)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", owner).Msg("failed to list tasks")
		return nil, true
	}
	return tasks, false
}

func recordFromFields(owner, id int64, fields model.ValidatedFields) storage.Task {
	return storage.Task{
		ID:          id,
		OwnerID:     owner,
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    string(fields.Priority),
		DeadlineStr: fields.DeadlineStr,
		Deadline:    fields.Deadline,
		Duration:    fields.Duration,
	}
}
