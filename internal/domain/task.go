package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Allowed task status values. A task starts Scheduled; user action moves it
// to Completed, and the expiry sweeper moves overdue tasks to Incompleted.
// The sweeper never re-evaluates a task that has left Scheduled.
const (
	TaskStatusScheduled   TaskStatus = "Scheduled"
	TaskStatusCompleted   TaskStatus = "Completed"
	TaskStatusIncompleted TaskStatus = "Incompleted"
)

// IsValid reports whether s is one of the three allowed status values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusScheduled, TaskStatusCompleted, TaskStatusIncompleted:
		return true
	}
	return false
}

// Task represents a single scheduled to-do item owned by one user.
// Date and Time keep the user's original strings; Deadline() resolves them
// when a comparable instant is needed.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Time        string     `json:"time"` // h:mm AM|PM
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTask creates a Scheduled task for the given user. It generates the
// task ID, stamps the creation time, and validates all fields including the
// date/time pair. Returns ErrValidation or ErrInvalidDateTime on bad input.
func NewTask(userID uuid.UUID, title, description, date, clock string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        date,
		Time:        clock,
		Status:      TaskStatusScheduled,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil || t.UserID == uuid.Nil {
		return ErrInvalidID
	}

	if t.Title == "" || t.Description == "" || t.Date == "" || t.Time == "" {
		return ErrEmptyField
	}

	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}

	// A task is never persisted with an unparsable deadline.
	if _, err := ParseDeadline(t.Date, t.Time); err != nil {
		return err
	}

	return nil
}

// Deadline resolves the task's date/time strings into a comparable instant.
func (t *Task) Deadline() (Deadline, error) {
	return ParseDeadline(t.Date, t.Time)
}
