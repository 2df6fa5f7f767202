package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/picup-app/picup/internal/clipboard"
	"github.com/picup-app/picup/internal/service"
	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	pkgapp "github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
	"github.com/picup-app/picup/pkg/workerpool"
	"github.com/picup-app/picup/pkg/writequeue"
)

// App is the application container. It owns every long-lived component
// and hands them out to the router and the cron tasks.
type App struct {
	config *AppConfig
	logger *zap.Logger

	workerPool *workerpool.Pool
	writeQueue *writequeue.Queue

	Repo      *settings.Repository
	Clipboard *clipboard.System
	Extractor *uploader.Extractor
	Uploader  *uploader.Uploader
	Hub       *pkgapp.WebsocketServer
	Service   *service.Service

	shutdownOnce sync.Once
}

// NewApp builds the container and performs all dependency injection.
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
	}

	wpConfig := cfg.GetWorkerPoolConfig()
	a.workerPool = workerpool.New(&wpConfig, logger)

	wqConfig := cfg.GetWriteQueueConfig()
	a.writeQueue = writequeue.New(&wqConfig, logger)

	settingsPath := cfg.App.SettingsFile
	if settingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		settingsPath = p
	}
	repo, err := settings.NewRepository(settingsPath, a.writeQueue, logger)
	if err != nil {
		return nil, err
	}
	a.Repo = repo
	code.SetGlobalDefaultLang(repo.Get().Language)

	a.Clipboard = clipboard.NewSystem()
	a.Extractor = uploader.NewExtractor(a.Clipboard, cfg.App.TempPath, logger)
	a.Uploader = uploader.New(repo, uploader.DefaultStoreFactory, logger)

	a.Hub = pkgapp.NewWebsocketServer(pkgapp.WebsocketServerConfig{}, logger)

	a.Service = service.New(repo, a.Uploader, a.Extractor, a.Clipboard, a.Hub, a.workerPool, logger)

	logger.Info("app container initialized",
		zap.String("settings", settingsPath),
		zap.Int("workerPoolMaxWorkers", wpConfig.MaxWorkers),
		zap.Int("writeQueueCapacity", wqConfig.Capacity))

	return a, nil
}

// Config returns the application configuration.
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger returns the zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Shutdown drains the worker pool and the settings write queue. Pending
// history writes are flushed before the process exits.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	a.shutdownOnce.Do(func() {
		if poolErr := a.workerPool.Shutdown(ctx); poolErr != nil {
			err = poolErr
		}
		if queueErr := a.writeQueue.Shutdown(ctx); queueErr != nil && err == nil {
			err = queueErr
		}
		a.logger.Info("app container shut down")
	})
	return err
}
