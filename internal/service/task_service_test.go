package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskline/taskline-api/internal/domain"
	"github.com/taskline/taskline-api/internal/mocks"
	"github.com/taskline/taskline-api/internal/store"
)

func newTestService(t *testing.T) (*TaskService, *mocks.MemoryTaskStore) {
	t.Helper()

	taskStore := mocks.NewMemoryTaskStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTaskService(taskStore, logger), taskStore
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("valid input persists a Scheduled task", func(t *testing.T) {
		t.Parallel()
		svc, taskStore := newTestService(t)
		userID := uuid.New()

		task, err := svc.Create(context.Background(), userID, "Groceries", "Milk and eggs", "2030-05-01", "6:00 PM")
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusScheduled, task.Status)
		stored, ok := taskStore.Get(task.ID)
		require.True(t, ok)
		assert.Equal(t, userID, stored.UserID)
	})

	t.Run("missing field rejected, nothing persisted", func(t *testing.T) {
		t.Parallel()
		svc, taskStore := newTestService(t)

		_, err := svc.Create(context.Background(), uuid.New(), "", "desc", "2030-05-01", "6:00 PM")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 0, taskStore.Len())
	})

	t.Run("bad time format rejected, nothing persisted", func(t *testing.T) {
		t.Parallel()
		svc, taskStore := newTestService(t)

		_, err := svc.Create(context.Background(), uuid.New(), "title", "desc", "2030-05-01", "18:00")
		assert.ErrorIs(t, err, domain.ErrInvalidDateTime)
		assert.Equal(t, 0, taskStore.Len())
	})
}

func TestTaskService_List(t *testing.T) {
	t.Parallel()

	t.Run("no collection yields empty slice", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		tasks, err := svc.List(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		userID := uuid.New()

		first, err := svc.Create(context.Background(), userID, "first", "d", "2030-05-01", "9:00 AM")
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), userID, "second", "d", "2030-05-01", "8:00 AM")
		require.NoError(t, err)

		tasks, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, second.ID, tasks[1].ID)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("round trip reflects new status and leaves others unchanged", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		userID := uuid.New()

		target, err := svc.Create(context.Background(), userID, "target", "d", "2030-05-01", "9:00 AM")
		require.NoError(t, err)
		other, err := svc.Create(context.Background(), userID, "other", "d", "2030-05-02", "9:00 AM")
		require.NoError(t, err)

		tasks, err := svc.UpdateStatus(context.Background(), userID, target.ID, domain.TaskStatusCompleted)
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		assert.Equal(t, domain.TaskStatusCompleted, tasks[0].Status)
		assert.Equal(t, domain.TaskStatusScheduled, tasks[1].Status)
		assert.Equal(t, other.Title, tasks[1].Title)
		assert.Equal(t, other.Date, tasks[1].Date)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		userID := uuid.New()

		task, err := svc.Create(context.Background(), userID, "t", "d", "2030-05-01", "9:00 AM")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), userID, task.ID, domain.TaskStatus("Done"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("unknown task id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), domain.TaskStatusCompleted)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("cannot touch another user's task", func(t *testing.T) {
		t.Parallel()
		svc, taskStore := newTestService(t)
		userA := uuid.New()
		userB := uuid.New()

		// Identically shaped tasks for two users.
		taskA, err := svc.Create(context.Background(), userA, "same", "same", "2030-05-01", "9:00 AM")
		require.NoError(t, err)
		taskB, err := svc.Create(context.Background(), userB, "same", "same", "2030-05-01", "9:00 AM")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), userA, taskA.ID, domain.TaskStatusCompleted)
		require.NoError(t, err)

		storedB, ok := taskStore.Get(taskB.ID)
		require.True(t, ok)
		assert.Equal(t, domain.TaskStatusScheduled, storedB.Status)

		// Addressing B's task with A's identity looks like a missing task.
		_, err = svc.UpdateStatus(context.Background(), userA, taskB.ID, domain.TaskStatusCompleted)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the task and returns remaining list", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		userID := uuid.New()

		target, err := svc.Create(context.Background(), userID, "target", "d", "2030-05-01", "9:00 AM")
		require.NoError(t, err)
		keep, err := svc.Create(context.Background(), userID, "keep", "d", "2030-05-02", "9:00 AM")
		require.NoError(t, err)

		tasks, err := svc.Delete(context.Background(), userID, target.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, keep.ID, tasks[0].ID)
	})

	t.Run("nonexistent id fails and leaves collection unchanged", func(t *testing.T) {
		t.Parallel()
		svc, taskStore := newTestService(t)
		userID := uuid.New()

		_, err := svc.Create(context.Background(), userID, "t", "d", "2030-05-01", "9:00 AM")
		require.NoError(t, err)

		_, err = svc.Delete(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Equal(t, 1, taskStore.Len())
	})
}
