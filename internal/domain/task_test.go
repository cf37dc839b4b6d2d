package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(userID, "Dentist", "Annual checkup", "2030-04-01", "3:30 PM")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, TaskStatusScheduled, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name                           string
			title, description, date, time string
		}{
			{"empty title", "", "desc", "2030-04-01", "3:30 PM"},
			{"empty description", "title", "", "2030-04-01", "3:30 PM"},
			{"empty date", "title", "desc", "", "3:30 PM"},
			{"empty time", "title", "desc", "2030-04-01", ""},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := NewTask(userID, tt.title, tt.description, tt.date, tt.time)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("unparsable date/time", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(userID, "title", "desc", "2030-04-01", "25:00 XM")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("nil user", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(uuid.Nil, "title", "desc", "2030-04-01", "3:30 PM")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestTaskStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskStatusScheduled.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.True(t, TaskStatusIncompleted.IsValid())

	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("Done").IsValid())
	assert.False(t, TaskStatus("scheduled").IsValid())
}

func TestTask_Deadline(t *testing.T) {
	t.Parallel()

	task, err := NewTask(uuid.New(), "title", "desc", "2030-04-01", "3:30 PM")
	require.NoError(t, err)

	deadline, err := task.Deadline()
	require.NoError(t, err)
	assert.Equal(t, "2030-04-01 15:30", deadline.String())
}
