package task

import (
	"go.uber.org/zap"

	"github.com/picup-app/picup/internal/app"
	"github.com/picup-app/picup/pkg/safe_close"
)

// Manager creates and owns the agent's background tasks.
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
}

// NewManager creates the task manager.
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
	}
}

// RegisterTasks registers every maintenance job the agent runs.
func (m *Manager) RegisterTasks(cfg *app.AppConfig) error {
	sweeper := NewTempFileCleanupTask(
		cfg.App.TempPath,
		cfg.GetTempRetention(),
		cfg.App.TempSweepSpec,
		m.logger,
	)
	m.scheduler.AddTask(sweeper)

	return nil
}

// Start starts all registered tasks.
func (m *Manager) Start() error {
	return m.scheduler.Start()
}
