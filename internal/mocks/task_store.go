package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskline/taskline-api/internal/domain"
	"github.com/taskline/taskline-api/internal/store"
)

// MemoryTaskStore is a thread-safe in-memory implementation of
// store.TaskStore. It preserves insertion order per user and supports
// error injection for failure-path tests.
type MemoryTaskStore struct {
	mu    sync.Mutex
	tasks []*domain.Task

	// Injectable errors; when non-nil the corresponding method fails.
	CreateErr        error
	ListByUserErr    error
	UpdateStatusErr  error
	DeleteErr        error
	ListScheduledErr error
	MarkExpiredErr   error
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *task
	s.tasks = append(s.tasks, &copied)
	return nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *MemoryTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	if s.ListByUserErr != nil {
		return nil, s.ListByUserErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *MemoryTaskStore) UpdateStatus(
	ctx context.Context,
	userID, taskID uuid.UUID,
	status domain.TaskStatus,
) error {
	if s.UpdateStatusErr != nil {
		return s.UpdateStatusErr
	}
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == taskID && task.UserID == userID {
			task.Status = status
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete
func (s *MemoryTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == taskID && task.UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// ListScheduled implements store.TaskStore.ListScheduled
func (s *MemoryTaskStore) ListScheduled(
	ctx context.Context,
) (map[uuid.UUID][]*domain.Task, error) {
	if s.ListScheduledErr != nil {
		return nil, s.ListScheduledErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byUser := make(map[uuid.UUID][]*domain.Task)
	for _, task := range s.tasks {
		if task.Status == domain.TaskStatusScheduled {
			copied := *task
			byUser[task.UserID] = append(byUser[task.UserID], &copied)
		}
	}
	return byUser, nil
}

// MarkExpired implements store.TaskStore.MarkExpired
func (s *MemoryTaskStore) MarkExpired(
	ctx context.Context,
	taskIDs []uuid.UUID,
) (int64, error) {
	if s.MarkExpiredErr != nil {
		return 0, s.MarkExpiredErr
	}

	ids := make(map[uuid.UUID]bool, len(taskIDs))
	for _, id := range taskIDs {
		ids[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, task := range s.tasks {
		// Same guard as the SQL implementation: only Scheduled rows move.
		if ids[task.ID] && task.Status == domain.TaskStatusScheduled {
			task.Status = domain.TaskStatusIncompleted
			n++
		}
	}
	return n, nil
}

// Seed inserts a task without validation, letting tests plant records that
// would be rejected by Create (e.g. an unparsable stored date).
func (s *MemoryTaskStore) Seed(task *domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *task
	s.tasks = append(s.tasks, &copied)
}

// Get returns a copy of the stored task with the given ID, for assertions.
func (s *MemoryTaskStore) Get(taskID uuid.UUID) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == taskID {
			copied := *task
			return &copied, true
		}
	}
	return nil, false
}

// Len returns the total number of stored tasks across all users.
func (s *MemoryTaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
