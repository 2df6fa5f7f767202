// Package task runs the agent's background maintenance jobs.
package task

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/picup-app/picup/pkg/safe_close"
)

// Task is one scheduled maintenance job.
type Task interface {
	Name() string
	// Spec is the cron spec the job runs on, empty disables scheduling
	Spec() string
	// IsStartupRun requests one immediate run before the schedule starts
	IsStartupRun() bool
	Run(ctx context.Context) error
}

// Scheduler drives registered tasks on their cron specs and stops them
// with the rest of the process.
type Scheduler struct {
	logger *zap.Logger
	cron   *cron.Cron
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler creates a task scheduler.
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		cron:   cron.New(),
		sc:     sc,
	}
}

// AddTask registers a task.
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start schedules every registered task and ties the cron lifecycle to
// the close signal.
func (s *Scheduler) Start() error {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return nil
	}

	for _, t := range s.tasks {
		task := t

		if task.IsStartupRun() {
			go s.runOnce(task, "startup")
		}

		if task.Spec() == "" {
			continue
		}
		if _, err := s.cron.AddFunc(task.Spec(), func() {
			s.runOnce(task, "scheduled")
		}); err != nil {
			return err
		}
		s.logger.Info("task scheduled",
			zap.String("name", task.Name()),
			zap.String("spec", task.Spec()))
	}

	s.cron.Start()

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		<-s.cron.Stop().Done()
		s.logger.Info("task scheduler stopped")
	})

	return nil
}

func (s *Scheduler) runOnce(task Task, reason string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	s.logger.Info("task running",
		zap.String("name", task.Name()),
		zap.String("reason", reason))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task failed",
			zap.String("name", task.Name()),
			zap.Error(err))
	}
}
