// Package sweeper implements the periodic expiry sweep that transitions
// overdue Scheduled tasks to Incompleted.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/taskline/taskline-api/internal/domain"
	"github.com/taskline/taskline-api/internal/store"
)

// sweepSpec is the fixed cadence: once per minute.
const sweepSpec = "* * * * *"

// Sweeper periodically scans every user's Scheduled tasks and flips the
// ones whose deadline has passed to Incompleted. It owns no state beyond
// the scan itself; the store is the single source of truth.
//
// The clock is injected so tests can sweep against a fixed "now" without
// waiting on the wall-clock timer.
type Sweeper struct {
	taskStore store.TaskStore
	clock     func() time.Time
	logger    *slog.Logger
	cron      *cron.Cron
	running   atomic.Bool
}

// New creates a Sweeper. A nil clock defaults to time.Now.
func New(taskStore store.TaskStore, clock func() time.Time, logger *slog.Logger) *Sweeper {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for Sweeper")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Sweeper")
	}
	if clock == nil {
		clock = time.Now
	}

	return &Sweeper{
		taskStore: taskStore,
		clock:     clock,
		logger:    logger.With(slog.String("component", "sweeper")),
	}
}

// Start begins the once-per-minute sweep schedule. It returns once the
// schedule is registered; sweeps run on the cron's own goroutine.
func (s *Sweeper) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(sweepSpec, s.tick); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("expiry sweeper started", slog.String("schedule", sweepSpec))
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("expiry sweeper stopped")
}

// tick runs one scheduled sweep, skipping the tick entirely if the
// previous sweep is still in flight so runs never overlap.
func (s *Sweeper) tick() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous sweep still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	if _, err := s.Sweep(context.Background()); err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
	}
}

// Sweep executes a single scan-and-transition pass and returns the number
// of tasks moved to Incompleted.
//
// "now" is captured once at sweep start so every task in the pass is judged
// against the same instant regardless of scan order. Per-record failures
// (an unparsable stored deadline, one user's write failing) are logged and
// skipped; they never abort the rest of the sweep. Only Scheduled tasks are
// candidates, which makes re-running the sweep a no-op.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	now := domain.NaiveNow(s.clock())

	byUser, err := s.taskStore.ListScheduled(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load scheduled tasks: %w", err)
	}

	var expired int64
	for userID, tasks := range byUser {
		ids := make([]uuid.UUID, 0, len(tasks))
		for _, task := range tasks {
			deadline, err := task.Deadline()
			if err != nil {
				s.logger.Warn("skipping task with unparsable date/time",
					slog.String("task_id", task.ID.String()),
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()))
				continue
			}

			if deadline.Before(now) {
				ids = append(ids, task.ID)
			}
		}

		// Write back only collections that actually changed.
		if len(ids) == 0 {
			continue
		}

		n, err := s.taskStore.MarkExpired(ctx, ids)
		if err != nil {
			s.logger.Error("failed to expire tasks for user",
				slog.String("user_id", userID.String()),
				slog.Int("task_count", len(ids)),
				slog.String("error", err.Error()))
			continue
		}
		expired += n
	}

	if expired > 0 {
		s.logger.Info("expiry sweep completed",
			slog.Int64("expired_count", expired),
			slog.String("sweep_now", now.String()))
	} else {
		s.logger.Debug("expiry sweep completed, no overdue tasks",
			slog.String("sweep_now", now.String()))
	}

	return expired, nil
}
