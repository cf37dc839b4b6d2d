package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskline/taskline-api/internal/domain"
	"github.com/taskline/taskline-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Tasks are stored one row each rather than as a per-user document, so a
// status update and a concurrent expiry sweep touch disjoint rows and a
// "save the whole collection" lost-update race cannot occur.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, task_date, task_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Date,
		task.Time,
		task.Status,
		task.CreatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create task",
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *PostgresTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, task_date, task_time, status, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// Empty collection is a valid result, not an error.
	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *PostgresTaskStore) UpdateStatus(
	ctx context.Context,
	userID, taskID uuid.UUID,
	status domain.TaskStatus,
) error {
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}

	// Scoping by user_id makes another user's task indistinguishable from
	// an absent one.
	query := `
		UPDATE tasks
		SET status = $1
		WHERE id = $2 AND user_id = $3
	`

	result, err := s.db.ExecContext(ctx, query, status, taskID, userID)
	if err != nil {
		s.logger.Error("failed to update task status",
			slog.String("task_id", taskID.String()),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to update task status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		s.logger.Error("failed to delete task",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// ListScheduled implements store.TaskStore.ListScheduled
func (s *PostgresTaskStore) ListScheduled(
	ctx context.Context,
) (map[uuid.UUID][]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, task_date, task_time, status, created_at
		FROM tasks
		WHERE status = $1
		ORDER BY user_id, created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, domain.TaskStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byUser := make(map[uuid.UUID][]*domain.Task)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		byUser[task.UserID] = append(byUser[task.UserID], task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled tasks: %w", err)
	}

	return byUser, nil
}

// MarkExpired implements store.TaskStore.MarkExpired
func (s *PostgresTaskStore) MarkExpired(
	ctx context.Context,
	taskIDs []uuid.UUID,
) (int64, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}

	ids := make([]string, len(taskIDs))
	for i, id := range taskIDs {
		ids[i] = id.String()
	}

	// The status guard keeps the write idempotent: a task the user
	// completed after the sweeper's read is left alone.
	query := `
		UPDATE tasks
		SET status = $1
		WHERE id = ANY($2::uuid[]) AND status = $3
	`

	result, err := s.db.ExecContext(ctx, query,
		domain.TaskStatusIncompleted,
		ids,
		domain.TaskStatusScheduled,
	)
	if err != nil {
		s.logger.Error("failed to mark tasks expired",
			slog.Int("task_count", len(taskIDs)),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to mark tasks expired: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Date,
		&task.Time,
		&task.Status,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan task row: %w", err)
	}
	return &task, nil
}
