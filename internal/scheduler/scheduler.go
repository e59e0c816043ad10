package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the scenario batch on a cron spec (watch mode), so the
// recorded history accumulates across config edits.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	task func()
}

// New creates a Scheduler around the batch task.
func New(ctx context.Context, task func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
		task: task,
	}
}

// Register registers the batch task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) run() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}
	log.Println("[INFO] running scheduled batch")
	s.task()
}
