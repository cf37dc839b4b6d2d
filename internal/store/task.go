package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskline/taskline-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every user-facing operation is scoped by the owning user's ID; an
// implementation must never locate a task outside the caller's collection.
// Mutations are atomic at single-task granularity, so a concurrent status
// update and expiry sweep can never silently discard each other's writes.
type TaskStore interface {
	// Create saves a new task to the store.
	// The task must already be validated (see domain.Task.Validate);
	// implementations reject invalid tasks with ErrInvalidEntity.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser retrieves all tasks owned by the given user in insertion
	// order. A user with no tasks yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// UpdateStatus sets the status of one task within the given user's
	// collection. Returns ErrTaskNotFound if the task does not exist for
	// that user, and domain.ErrInvalidStatus if status is outside the
	// allowed set. The store is left unchanged on failure.
	UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) error

	// Delete removes one task from the given user's collection.
	// Returns ErrTaskNotFound if the task does not exist for that user;
	// the collection is left unchanged in that case.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// ListScheduled retrieves every task still in the Scheduled state
	// across all users, for the expiry sweeper. Results are grouped by
	// owner so the sweeper can account per-collection changes.
	ListScheduled(ctx context.Context) (map[uuid.UUID][]*domain.Task, error)

	// MarkExpired transitions the given tasks to Incompleted, but only
	// those still in the Scheduled state: a task completed between the
	// sweeper's read and this write keeps its user-chosen status.
	// Returns the number of tasks actually transitioned.
	MarkExpired(ctx context.Context, taskIDs []uuid.UUID) (int64, error)
}
