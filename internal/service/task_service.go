package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskline/taskline-api/internal/domain"
	"github.com/taskline/taskline-api/internal/store"
)

// TaskService owns the task lifecycle: creation, listing, user-driven status
// changes, and deletion. The user ID passed to every method is the
// authenticated identity supplied by the transport layer; the service trusts
// it completely and scopes every store call by it.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskService {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}

	return &TaskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// Create validates the input, builds a Scheduled task, and persists it.
// All four fields are required (domain.ErrValidation when missing) and the
// date/time pair must resolve to a deadline (domain.ErrInvalidDateTime).
// Nothing is persisted when validation fails.
func (s *TaskService) Create(
	ctx context.Context,
	userID uuid.UUID,
	title, description, date, clock string,
) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description, date, clock)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))

	return task, nil
}

// List returns all of the user's tasks in insertion order. A user with no
// tasks gets an empty slice, not an error.
func (s *TaskService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets the status of one of the user's tasks and returns the
// full updated task list. The status must be one of the three allowed
// values (domain.ErrInvalidStatus otherwise); an unknown task ID yields
// store.ErrTaskNotFound with the collection untouched.
func (s *TaskService) UpdateStatus(
	ctx context.Context,
	userID, taskID uuid.UUID,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.taskStore.UpdateStatus(ctx, userID, taskID, status); err != nil {
		return nil, err
	}

	s.logger.Debug("task status updated",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()),
		slog.String("status", string(status)))

	return s.List(ctx, userID)
}

// Delete removes one of the user's tasks and returns the full updated task
// list. An unknown task ID yields store.ErrTaskNotFound with the collection
// untouched.
func (s *TaskService) Delete(
	ctx context.Context,
	userID, taskID uuid.UUID,
) ([]*domain.Task, error) {
	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		return nil, err
	}

	s.logger.Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))

	return s.List(ctx, userID)
}
